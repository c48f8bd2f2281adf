package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/signal"
)

// WriteCSV writes one row per index with the original and filtered value,
// preceded by the header "Index,Original,Filtered". Rows stop at the
// shorter of the two inputs.
func WriteCSV(w io.Writer, original, filtered []float64) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Index", "Original", "Filtered"}); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	n := min(len(original), len(filtered))
	for i := range n {
		row := []string{strconv.Itoa(i), formatFloat(original[i]), formatFloat(filtered[i])}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}

	return nil
}

// WriteWaveformCSV writes "Time (s),Amplitude" rows with six decimals.
func WriteWaveformCSV(w io.Writer, wf core.Waveform) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Time (s)", "Amplitude"}); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for i, x := range wf.Samples {
		row := []string{
			strconv.FormatFloat(wf.TimeAt(i), 'f', 6, 64),
			strconv.FormatFloat(x, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}

	return nil
}

// WritePointsCSV writes decimated chart points as "Index,Time (s),Value"
// rows. Time is derived from sampleRate and left empty when it is not
// positive.
func WritePointsCSV(w io.Writer, points []signal.Point, sampleRate float64) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Index", "Time (s)", "Value"}); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for _, p := range points {
		t := ""
		if sampleRate > 0 {
			t = strconv.FormatFloat(float64(p.Index)/sampleRate, 'f', 6, 64)
		}

		if err := cw.Write([]string{strconv.Itoa(p.Index), t, formatFloat(p.Value)}); err != nil {
			return fmt.Errorf("report: write point %d: %w", p.Index, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}

	return nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
