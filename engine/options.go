package engine

import "github.com/katalvlaran/bcmaps/ret"

// Option configures loading. Option constructors panic on meaningless
// arguments.
type Option func(*config)

type config struct {
	conn        ret.Connectivity
	maxExpected int
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c config) retOptions() ret.Options {
	return ret.Options{Connectivity: c.conn, MaxExpected: c.maxExpected}
}

// WithConnectivity sets the reticle connectivity. RET input cannot be
// loaded without it. Panics unless c is Conn4 or Conn8.
func WithConnectivity(c ret.Connectivity) Option {
	if !c.Valid() {
		panic("engine: WithConnectivity(" + c.String() + ")")
	}
	return func(cfg *config) {
		cfg.conn = c
	}
}

// WithDiagonal is WithConnectivity(Conn8) when diagonal is true and
// WithConnectivity(Conn4) otherwise.
func WithDiagonal(diagonal bool) Option {
	if diagonal {
		return WithConnectivity(ret.Conn8)
	}

	return WithConnectivity(ret.Conn4)
}

// WithMaxExpected caps the number of expected paths derived from a reticle;
// 0 keeps ret.DefaultMaxExpected. Panics on a negative n.
func WithMaxExpected(n int) Option {
	if n < 0 {
		panic("engine: WithMaxExpected(n < 0)")
	}
	return func(cfg *config) {
		cfg.maxExpected = n
	}
}
