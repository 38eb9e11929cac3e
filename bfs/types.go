package bfs

// Config controls the direction-optimizing heuristic's knobs.
type Config struct {
	// Alpha controls the top-down-to-bottom-up switch: switch once
	// scoutCount exceeds edgesToCheck/Alpha. Default 15.
	Alpha int

	// Beta controls the bottom-up-to-top-down switch: switch back once
	// a bottom-up step awakens at most N/Beta vertices and fewer than
	// the step before it. Default 18.
	Beta int
}

// Option configures a Config via functional arguments.
type Option func(*Config)

// WithAlpha overrides the default alpha (15).
func WithAlpha(alpha int) Option { return func(c *Config) { c.Alpha = alpha } }

// WithBeta overrides the default beta (18).
func WithBeta(beta int) Option { return func(c *Config) { c.Beta = beta } }

func newConfig(opts []Option) Config {
	c := Config{Alpha: 15, Beta: 18}
	for _, o := range opts {
		o(&c)
	}

	return c
}
