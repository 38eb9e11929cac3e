package cc

// Config controls Afforest's sampling knobs.
type Config struct {
	// SamplingRounds is the number of cheap sampling rounds run before
	// the dominant-component skip pass. Default 2.
	SamplingRounds int

	// DominantSampleSize is how many comp entries are sampled to find
	// the dominant component label by mode. Default 1024.
	DominantSampleSize int
}

// Option configures a Config via functional arguments.
type Option func(*Config)

// WithSamplingRounds overrides the default sampling round count (2).
func WithSamplingRounds(n int) Option { return func(c *Config) { c.SamplingRounds = n } }

// WithDominantSampleSize overrides the default dominant-component
// sample size (1024).
func WithDominantSampleSize(n int) Option { return func(c *Config) { c.DominantSampleSize = n } }

func newConfig(opts []Option) Config {
	c := Config{SamplingRounds: 2, DominantSampleSize: 1024}
	for _, o := range opts {
		o(&c)
	}

	return c
}
