package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/measure/activity"
	timestats "github.com/cwbudde/algo-waveform/stats/time"
)

// StatsTable renders descriptive statistics as aligned key/value rows.
func StatsTable(title string, s timestats.Stats, sampleRate float64) string {
	rows := []struct {
		key   string
		value string
	}{
		{"Samples", fmt.Sprintf("%d", s.Length)},
		{"Min", fmt.Sprintf("%.6g @ %s", s.Min, formatPosition(s.MinPos, sampleRate))},
		{"Max", fmt.Sprintf("%.6g @ %s", s.Max, formatPosition(s.MaxPos, sampleRate))},
		{"Peak", fmt.Sprintf("%.6g (%.2f dBFS)", s.Peak, core.LinearToDB(s.Peak))},
		{"Mean", fmt.Sprintf("%.6g", s.Mean)},
		{"Std", fmt.Sprintf("%.6g", s.Std)},
		{"RMS", fmt.Sprintf("%.6g (%.2f dBFS)", s.RMS, core.LinearToDB(s.RMS))},
		{"Median", fmt.Sprintf("%.6g", s.Median)},
		{"Crest", fmt.Sprintf("%.3f", s.CrestFactor())},
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, TitleStyle.Render(title))
	for _, r := range rows {
		lines = append(lines, KeyStyle.Render(r.key)+ValueStyle.Render(r.value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// PeriodsTable renders activity periods with their times at sampleRate.
func PeriodsTable(periods []activity.Period, sampleRate float64) string {
	if len(periods) == 0 {
		return TitleStyle.Render("Activity") + "\n" + KeyStyle.UnsetWidth().Render("no active periods")
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("Activity (%d periods)", len(periods))))
	sb.WriteString("\n")
	sb.WriteString(row(headerStyle, "#", "Start", "End", "Start (s)", "Duration"))

	for i, p := range periods {
		sb.WriteString("\n")
		sb.WriteString(row(cellStyle,
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", p.Start),
			fmt.Sprintf("%d", p.End),
			fmt.Sprintf("%.4f", core.Waveform{SampleRate: sampleRate}.TimeAt(p.Start)),
			p.Duration(sampleRate).Round(time.Microsecond).String(),
		))
	}

	return sb.String()
}

// PeaksTable renders peak indices with their times and values.
func PeaksTable(peaks []int, wf core.Waveform) string {
	if len(peaks) == 0 {
		return TitleStyle.Render("Peaks") + "\n" + KeyStyle.UnsetWidth().Render("no peaks above threshold")
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("Peaks (%d)", len(peaks))))
	sb.WriteString("\n")
	sb.WriteString(row(headerStyle, "Index", "Time (s)", "Value"))

	for _, idx := range peaks {
		sb.WriteString("\n")
		sb.WriteString(row(cellStyle,
			fmt.Sprintf("%d", idx),
			fmt.Sprintf("%.4f", wf.TimeAt(idx)),
			fmt.Sprintf("%.6g", wf.Samples[idx]),
		))
	}

	return sb.String()
}

// Gain is a filter's magnitude response at one frequency.
type Gain struct {
	Freq float64
	DB   float64
}

// GainTable renders the magnitude response at the given frequencies.
func GainTable(title string, gains []Gain) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(row(headerStyle, "Freq (Hz)", "Gain (dB)"))

	for _, g := range gains {
		sb.WriteString("\n")
		sb.WriteString(row(cellStyle, fmt.Sprintf("%g", g.Freq), fmt.Sprintf("%.2f", g.DB)))
	}

	return sb.String()
}

func row(style lipgloss.Style, cells ...string) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		rendered[i] = style.Render(c)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func formatPosition(index int, sampleRate float64) string {
	if sampleRate <= 0 {
		return fmt.Sprintf("#%d", index)
	}

	return fmt.Sprintf("#%d (%.4fs)", index, float64(index)/sampleRate)
}
