package typed

import (
	"math/rand"

	"go.uber.org/zap"
)

type (
	// Source is the random source behind Shuffle and Sample.
	// *rand.Rand satisfies it.
	Source interface {
		Intn(n int) int
		Shuffle(n int, swap func(i, j int))
	}

	config struct {
		logger *zap.Logger
		rand   Source
	}

	Option func(c *config)
)

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

var defaultConfig = &config{
	logger: zap.NewNop(),
	rand:   globalSource{},
}

func newConfig(options []Option) *config {
	if len(options) == 0 {
		return defaultConfig
	}

	cfg := *defaultConfig
	for _, o := range options {
		o(&cfg)
	}
	return &cfg
}

// WithLogger sets the logger that records rejected writes and type degradation.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRand sets the random source, defaults to the math/rand global one.
func WithRand(src Source) Option {
	return func(c *config) {
		if src != nil {
			c.rand = src
		}
	}
}
