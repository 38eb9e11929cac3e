package sssp

// Infinity is the sentinel distance for unreachable vertices, matching
// the spec's "WeightT::MAX / 2" headroom against overflow when a
// caller adds a finite weight to it.
const Infinity int64 = 1 << 60

// Config controls the Δ-stepping bucket width.
type Config struct {
	// Delta is the bucket width; must be >= 1. Default 1.
	Delta int64
}

// Option configures a Config via functional arguments.
type Option func(*Config)

// WithDelta overrides the default delta (1).
func WithDelta(delta int64) Option { return func(c *Config) { c.Delta = delta } }

func newConfig(opts []Option) Config {
	c := Config{Delta: 1}
	for _, o := range opts {
		o(&c)
	}
	if c.Delta < 1 {
		c.Delta = 1
	}

	return c
}
