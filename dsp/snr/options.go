package snr

import "github.com/cwbudde/algo-snr/dsp/noise"

// config holds the resolved engine settings.
type config struct {
	meanMethod  string
	meanValue   float64
	meanLiteral bool

	stdMethod  string
	stdValue   float64
	stdLiteral bool

	models bool
}

// Option mutates the engine configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		meanMethod: noise.MethodMedian,
		stdMethod:  noise.MethodIQR,
		models:     true,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMeanMethod selects the noise-mean estimator by name.
// See [noise.MeanMethods] for valid choices.
func WithMeanMethod(name string) Option {
	return func(cfg *config) {
		cfg.meanMethod = name
		cfg.meanLiteral = false
	}
}

// WithMean bypasses mean estimation with a literal value, broadcast to
// all profiles.
func WithMean(value float64) Option {
	return func(cfg *config) {
		cfg.meanValue = value
		cfg.meanLiteral = true
	}
}

// WithStdMethod selects the noise standard-deviation estimator by name.
// See [noise.StdMethods] for valid choices.
func WithStdMethod(name string) Option {
	return func(cfg *config) {
		cfg.stdMethod = name
		cfg.stdLiteral = false
	}
}

// WithStd bypasses standard-deviation estimation with a literal value,
// broadcast to all profiles. The value must be strictly positive.
func WithStd(value float64) Option {
	return func(cfg *config) {
		cfg.stdValue = value
		cfg.stdLiteral = true
	}
}

// WithoutModels skips best-fit model reconstruction; Result.Models will
// be nil.
func WithoutModels() Option {
	return func(cfg *config) {
		cfg.models = false
	}
}
