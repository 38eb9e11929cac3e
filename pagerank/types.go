package pagerank

// Damping is the fixed PageRank damping factor the spec specifies.
const Damping = 0.85

// Config controls iteration bounds.
type Config struct {
	// MaxIters bounds the number of iterations. Default 20.
	MaxIters int

	// Epsilon is the convergence threshold on total per-iteration
	// error; 0 disables early convergence (always run MaxIters).
	Epsilon float64
}

// Option configures a Config via functional arguments.
type Option func(*Config)

// WithMaxIters overrides the default iteration bound (20).
func WithMaxIters(n int) Option { return func(c *Config) { c.MaxIters = n } }

// WithEpsilon sets a convergence threshold on total per-iteration error.
func WithEpsilon(eps float64) Option { return func(c *Config) { c.Epsilon = eps } }

func newConfig(opts []Option) Config {
	c := Config{MaxIters: 20}
	for _, o := range opts {
		o(&c)
	}

	return c
}
