package bc

// Config controls the number of sampled sources and their seed.
type Config struct {
	// NumSources is K, the number of randomly chosen sources whose
	// partial scores are accumulated. Default 4.
	NumSources int

	// Seed drives the deterministic source sampler. Default 27491095
	// (matching generator's kRandSeed, so a fixed CLI seed flag could
	// drive both generation and BC source sampling consistently).
	Seed uint32
}

// Option configures a Config via functional arguments.
type Option func(*Config)

// WithNumSources overrides the default source count (4).
func WithNumSources(k int) Option { return func(c *Config) { c.NumSources = k } }

// WithSeed overrides the default source-sampling seed.
func WithSeed(seed uint32) Option { return func(c *Config) { c.Seed = seed } }

func newConfig(opts []Option) Config {
	c := Config{NumSources: 4, Seed: 27491095}
	for _, o := range opts {
		o(&c)
	}

	return c
}
