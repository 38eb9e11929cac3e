package cli

import (
	"flag"
	"fmt"
	"os"
)

// defaultDegree is the average out-degree used when generating a
// synthetic graph via -g/-u, matching the common GAP-style benchmark
// default.
const defaultDegree = 16

// Flags holds the flag surface common to every gapgo-* binary (§6).
// Kernel-specific binaries register additional flags (-k, -d) on the
// same FlagSet before calling Parse.
type Flags struct {
	Help       bool
	File       string
	Scale      int
	Uniform    int
	Symmetrize bool
	Trials     int
	Source     int
	Analysis   bool
	InPlace    bool
}

// NewFlagSet registers the shared flags on a fresh FlagSet named after
// the calling binary and returns both for the caller to extend.
func NewFlagSet(name string) (*flag.FlagSet, *Flags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &Flags{Source: -1, Trials: 16}

	fs.BoolVar(&f.Help, "h", false, "print usage and exit")
	fs.StringVar(&f.File, "f", "", "load graph from file (suffix selects parser)")
	fs.IntVar(&f.Scale, "g", 0, "generate R-MAT graph with 2^scale vertices")
	fs.IntVar(&f.Uniform, "u", 0, "generate uniform random graph with 2^scale vertices")
	fs.BoolVar(&f.Symmetrize, "s", false, "symmetrize input edge list")
	fs.IntVar(&f.Trials, "n", 16, "number of benchmark trials")
	fs.IntVar(&f.Source, "r", -1, "fixed start vertex (default random)")
	fs.BoolVar(&f.Analysis, "a", false, "print analysis after last trial")
	fs.BoolVar(&f.InPlace, "m", false, "in-place build (unweighted only)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", name)
		fs.PrintDefaults()
	}

	return fs, f
}
