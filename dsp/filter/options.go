package filter

import "github.com/cwbudde/algo-waveform/dsp/filter/design"

// config holds per-call settings.
type config struct {
	topology design.Topology
}

// Option configures a filter call.
type Option func(*config)

// WithTopology selects how orders above two are realized. The default is
// [design.TopologyReplicated].
func WithTopology(t design.Topology) Option {
	return func(cfg *config) { cfg.topology = t }
}

func applyOptions(opts []Option) config {
	cfg := config{topology: design.TopologyReplicated}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
