package builder

// Config controls how Build and BuildWeighted construct a csr.Graph.
type Config struct {
	// N, if nonzero, fixes the vertex count. If zero, N is derived as
	// 1+max_node_id(el).
	N int

	// Directed selects directed CSR construction. false builds an
	// undirected graph (symmetrize is then implied regardless of the
	// Symmetrize field, since an undirected graph's adjacency must be
	// symmetric by definition).
	Directed bool

	// Symmetrize ensures every edge's inverse also appears in the
	// adjacency, for directed input that should be treated as
	// undirected.
	Symmetrize bool

	// Inverse requests a separate inverse adjacency for a directed
	// graph (ignored for undirected graphs, which never need one).
	Inverse bool

	// Transpose swaps edge endpoints before counting degrees and
	// scattering, building the transpose of the input edge list.
	Transpose bool

	// InPlace selects MakeCSRInPlace instead of the copying builder.
	// Only valid for Build (unweighted); BuildWeighted always copies.
	InPlace bool

	// RelabelByDegree reorders vertices by descending out-degree after
	// construction. Only valid for undirected graphs.
	RelabelByDegree bool
}

// Option configures a Config via functional arguments.
type Option func(*Config)

// WithN fixes the vertex count explicitly.
func WithN(n int) Option { return func(c *Config) { c.N = n } }

// WithDirected builds a directed graph.
func WithDirected() Option { return func(c *Config) { c.Directed = true } }

// WithSymmetrize ensures every edge's inverse is present in the adjacency.
func WithSymmetrize() Option { return func(c *Config) { c.Symmetrize = true } }

// WithInverse requests inverse adjacency for a directed graph.
func WithInverse() Option { return func(c *Config) { c.Inverse = true } }

// WithTranspose builds the transpose of the input edge list.
func WithTranspose() Option { return func(c *Config) { c.Transpose = true } }

// WithInPlace selects in-place construction (unweighted only).
func WithInPlace() Option { return func(c *Config) { c.InPlace = true } }

// WithRelabelByDegree reorders vertices by descending degree after
// construction.
func WithRelabelByDegree() Option { return func(c *Config) { c.RelabelByDegree = true } }

func newConfig(opts []Option) Config {
	var c Config
	for _, o := range opts {
		o(&c)
	}

	return c
}
