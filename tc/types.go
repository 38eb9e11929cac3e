package tc

// Config controls WorthRelabeling's sampling.
type Config struct {
	// SampleSize is how many out-degrees WorthRelabeling samples.
	// Default 1000.
	SampleSize int
}

// Option configures a Config via functional arguments.
type Option func(*Config)

// WithSampleSize overrides the default sample size (1000).
func WithSampleSize(n int) Option { return func(c *Config) { c.SampleSize = n } }

func newConfig(opts []Option) Config {
	c := Config{SampleSize: 1000}
	for _, o := range opts {
		o(&c)
	}

	return c
}
