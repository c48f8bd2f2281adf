package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-waveform/dsp/core"
	"github.com/cwbudde/algo-waveform/dsp/filter"
	"github.com/cwbudde/algo-waveform/dsp/filter/design"
	"github.com/cwbudde/algo-waveform/dsp/signal"
	"github.com/cwbudde/algo-waveform/internal/report"
	"github.com/cwbudde/algo-waveform/internal/wavio"
	"github.com/cwbudde/algo-waveform/measure/activity"
	"github.com/cwbudde/algo-waveform/measure/peak"
	timestats "github.com/cwbudde/algo-waveform/stats/time"
)

// Input selects one channel of a WAV file.
type Input struct {
	Path    string `arg:"" name:"input" type:"existingfile" help:"WAV file to read."`
	Channel int    `short:"c" default:"0" help:"Channel index to analyze."`
}

func (in Input) load(app *App) (core.Waveform, error) {
	wf, info, err := wavio.Load(in.Path, in.Channel)
	if err != nil {
		return core.Waveform{}, err
	}

	app.Log.Debug("loaded input",
		zap.String("path", in.Path),
		zap.Int("channel", in.Channel),
		zap.Int("channels", info.Channels),
		zap.Int("sample_rate", info.SampleRate),
		zap.Int("bit_depth", info.BitDepth),
		zap.Int("frames", info.Frames),
	)

	return wf, nil
}

var topologies = map[string]design.Topology{
	"replicated":  design.TopologyReplicated,
	"butterworth": design.TopologyButterworth,
}

// FilterCmd applies one filter to the input.
type FilterCmd struct {
	Input

	Type     string  `short:"t" default:"lowpass" enum:"lowpass,highpass,bandpass,notch,bandstop" help:"Filter type (${enum})."`
	Freq     float64 `short:"f" required:"" help:"Cutoff, or low edge for band types, in Hz."`
	Freq2    float64 `name:"freq2" help:"High edge for bandpass and notch, in Hz."`
	Order    int     `default:"4" help:"Filter order, 1 to 8."`
	Topology string  `default:"replicated" enum:"replicated,butterworth" help:"Section layout (${enum})."`
	Output   string  `short:"o" type:"path" help:"Write the filtered signal to this WAV file."`
	CSV      string  `type:"path" help:"Write Index,Original,Filtered rows to this CSV file."`
	BitDepth int     `default:"16" help:"Output bit depth (16, 24 or 32)."`
}

// Run executes the filter command.
func (c *FilterCmd) Run(app *App) error {
	typ, err := filter.ParseType(c.Type)
	if err != nil {
		return err
	}

	wf, err := c.load(app)
	if err != nil {
		return err
	}

	spec := filter.Spec{
		Type:       typ,
		Order:      c.Order,
		Freq1:      c.Freq,
		Freq2:      c.Freq2,
		SampleRate: wf.SampleRate,
	}

	topology := filter.WithTopology(topologies[c.Topology])

	out, err := filter.Apply(wf.Samples, spec, topology)
	if err != nil {
		return err
	}

	edges := []float64{c.Freq}
	if typ.IsBand() {
		edges = append(edges, c.Freq2)
	}

	gains := make([]report.Gain, 0, len(edges))
	for _, f := range edges {
		db, err := filter.GainDB(spec, f, topology)
		if err != nil {
			return err
		}
		gains = append(gains, report.Gain{Freq: f, DB: db})
	}

	filtered := wf.WithSamples(out)
	app.Log.Info("filtered",
		zap.Stringer("type", typ),
		zap.Int("order", c.Order),
		zap.Float64("freq", c.Freq),
		zap.Float64("freq2", c.Freq2),
		zap.String("topology", c.Topology),
		zap.Int("samples", len(out)),
	)

	if c.Output != "" {
		if err := wavio.Save(c.Output, filtered, c.BitDepth); err != nil {
			return err
		}
		app.Log.Info("wrote WAV", zap.String("path", c.Output))
	}

	if c.CSV != "" {
		if err := writeFile(c.CSV, func(f *os.File) error {
			return report.WriteCSV(f, wf.Samples, out)
		}); err != nil {
			return err
		}
		app.Log.Info("wrote CSV", zap.String("path", c.CSV))
	}

	fmt.Fprintln(app.Out, report.StatsTable("Original", timestats.Calculate(wf.Samples), wf.SampleRate))
	fmt.Fprintln(app.Out)
	fmt.Fprintln(app.Out, report.StatsTable("Filtered ("+spec.Type.String()+")", timestats.Calculate(out), wf.SampleRate))
	fmt.Fprintln(app.Out)
	fmt.Fprintln(app.Out, report.GainTable("Response at cutoff", gains))

	return nil
}

// StatsCmd prints descriptive statistics.
type StatsCmd struct {
	Input

	Smooth int `default:"0" help:"Centered moving-average window applied first (0 disables)."`
}

// Run executes the stats command.
func (c *StatsCmd) Run(app *App) error {
	wf, err := c.load(app)
	if err != nil {
		return err
	}

	samples := signal.MovingAverage(wf.Samples, c.Smooth)
	s := timestats.Calculate(samples)

	fmt.Fprintln(app.Out, report.StatsTable(c.Path, s, wf.SampleRate))
	fmt.Fprintf(app.Out, "%s%s\n",
		report.KeyStyle.Render("ZCR"),
		report.ValueStyle.Render(fmt.Sprintf("%.6f", timestats.ZeroCrossingRate(samples))))
	fmt.Fprintf(app.Out, "%s%s\n",
		report.KeyStyle.Render("Duration"),
		report.ValueStyle.Render(wf.Duration().String()))

	return nil
}

// ActivityCmd detects active periods.
type ActivityCmd struct {
	Input

	Threshold float64 `default:"0.1" help:"Absolute level above which a sample is active."`
	Envelope  int     `default:"0" help:"Rectify and smooth with this moving-average window first (0 disables)."`
}

// Run executes the activity command.
func (c *ActivityCmd) Run(app *App) error {
	wf, err := c.load(app)
	if err != nil {
		return err
	}

	samples := wf.Samples
	if c.Envelope > 0 {
		samples = envelope(samples, c.Envelope)
	}

	periods := activity.Detect(samples, c.Threshold)
	app.Log.Info("activity", zap.Int("periods", len(periods)), zap.Float64("threshold", c.Threshold))

	fmt.Fprintln(app.Out, report.PeriodsTable(periods, wf.SampleRate))

	return nil
}

// PeaksCmd lists local maxima.
type PeaksCmd struct {
	Input

	Threshold float64 `default:"0.5" help:"Minimum peak value."`
	Smooth    int     `default:"0" help:"Centered moving-average window applied first (0 disables)."`
}

// Run executes the peaks command.
func (c *PeaksCmd) Run(app *App) error {
	wf, err := c.load(app)
	if err != nil {
		return err
	}

	smoothed := wf.WithSamples(signal.MovingAverage(wf.Samples, c.Smooth))
	peaks := peak.Find(smoothed.Samples, c.Threshold)
	app.Log.Info("peaks", zap.Int("count", len(peaks)), zap.Float64("threshold", c.Threshold))

	fmt.Fprintln(app.Out, report.PeaksTable(peaks, smoothed))

	return nil
}

// ExportCmd writes the waveform as CSV for plotting.
type ExportCmd struct {
	Input

	Output     string `short:"o" type:"path" help:"CSV file to write (stdout when empty)."`
	Format     string `default:"points" enum:"points,waveform" help:"CSV layout (${enum}): Index,Time (s),Value or Time (s),Amplitude."`
	Smooth     int    `default:"0" help:"Centered moving-average window (0 disables)."`
	Downsample int    `default:"1" help:"Keep every n-th sample."`
	Normalize  bool   `help:"Rescale to [0, 1]."`
	MaxPoints  int    `default:"0" help:"Decimate to about this many points, always keeping the last sample (0 keeps all)."`
}

// Run executes the export command.
func (c *ExportCmd) Run(app *App) error {
	wf, err := c.load(app)
	if err != nil {
		return err
	}

	samples := signal.MovingAverage(wf.Samples, c.Smooth)
	samples = signal.Downsample(samples, c.Downsample)
	if c.Normalize {
		samples = signal.Normalize(samples)
	}

	rate := wf.SampleRate
	if c.Downsample > 1 {
		rate /= float64(c.Downsample)
	}

	var write func(w io.Writer) error

	switch c.Format {
	case "waveform":
		if c.MaxPoints > 0 {
			return fmt.Errorf("--max-points needs --format points")
		}
		out := core.Waveform{Samples: samples, SampleRate: rate}
		app.Log.Info("export", zap.Int("samples", out.Len()), zap.Float64("sample_rate", rate))
		write = func(w io.Writer) error { return report.WriteWaveformCSV(w, out) }
	default:
		points := signal.Decimate(samples, c.MaxPoints)
		app.Log.Info("export", zap.Int("points", len(points)), zap.Float64("sample_rate", rate))
		write = func(w io.Writer) error { return report.WritePointsCSV(w, points, rate) }
	}

	if c.Output == "" {
		return write(app.Out)
	}

	return writeFile(c.Output, func(f *os.File) error { return write(f) })
}

// GenerateCmd writes a deterministic test signal.
type GenerateCmd struct {
	Output string `arg:"" name:"output" type:"path" help:"WAV file to write."`

	Kind      string    `default:"tones" enum:"tones,bursts,noise" help:"Signal kind (${enum})."`
	Freq      []float64 `default:"50,1000" help:"Tone frequencies in Hz. Bursts use the first."`
	Amplitude float64   `default:"0.4" help:"Amplitude per tone."`
	Noise     float64   `default:"0" help:"Amplitude of added white noise."`
	Rate      int       `default:"8000" help:"Sample rate in Hz."`
	Duration  float64   `default:"1" help:"Length in seconds (tones and noise)."`
	On        float64   `default:"0.1" help:"Burst length in seconds."`
	Off       float64   `default:"0.2" help:"Gap length in seconds."`
	Bursts    int       `default:"3" help:"Number of bursts."`
	Seed      int64     `default:"1" help:"Noise seed."`
	BitDepth  int       `default:"16" help:"Output bit depth (16, 24 or 32)."`
}

// Run executes the generate command.
func (c *GenerateCmd) Run(app *App) error {
	g := signal.NewGenerator(signal.WithSampleRate(float64(c.Rate)), signal.WithSeed(c.Seed))

	samples, err := c.render(g)
	if err != nil {
		return err
	}

	wf := core.Waveform{Samples: samples, SampleRate: float64(c.Rate)}
	if err := wavio.Save(c.Output, wf, c.BitDepth); err != nil {
		return err
	}

	app.Log.Info("generated",
		zap.String("path", c.Output),
		zap.String("kind", c.Kind),
		zap.Int("samples", wf.Len()),
		zap.Duration("duration", wf.Duration()),
	)
	fmt.Fprintf(app.Out, "%s%s\n", report.KeyStyle.Render("Wrote"), report.ValueStyle.Render(c.Output))

	return nil
}

func (c *GenerateCmd) render(g *signal.Generator) ([]float64, error) {
	n := int(math.Round(c.Duration * float64(c.Rate)))

	if c.Noise < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0, got %g", c.Noise)
	}
	if c.Amplitude <= 0 && (c.Kind != "noise" || c.Noise == 0) {
		return nil, fmt.Errorf("%s amplitude must be > 0, got %g", c.Kind, c.Amplitude)
	}

	var parts [][]float64

	switch c.Kind {
	case "tones":
		if len(c.Freq) == 0 {
			return nil, fmt.Errorf("tones need at least one --freq")
		}
		for _, f := range c.Freq {
			tone, err := g.Sine(f, c.Amplitude, n)
			if err != nil {
				return nil, err
			}
			parts = append(parts, tone)
		}
	case "bursts":
		if len(c.Freq) == 0 {
			return nil, fmt.Errorf("bursts need a --freq")
		}
		on := int(math.Round(c.On * float64(c.Rate)))
		off := int(math.Round(c.Off * float64(c.Rate)))
		bursts, err := g.Bursts(c.Freq[0], c.Amplitude, on, off, c.Bursts)
		if err != nil {
			return nil, err
		}
		parts = append(parts, bursts)
		n = len(bursts)
	case "noise":
		if c.Noise == 0 {
			c.Noise = c.Amplitude
		}
	}

	if c.Noise > 0 {
		noise, err := g.WhiteNoise(c.Noise, n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, noise)
	}

	return signal.Mix(parts...)
}

// envelope returns the centered moving average of |x|.
func envelope(samples []float64, window int) []float64 {
	rectified := make([]float64, len(samples))
	for i, x := range samples {
		rectified[i] = math.Abs(x)
	}

	return signal.MovingAverage(rectified, window)
}

func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
