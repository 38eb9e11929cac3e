// Command gapgo-sssp runs delta-stepping single-source shortest paths
// over a loaded or generated graph, per the shared CLI surface in §6.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/gapgo/bench"
	"github.com/katalvlaran/gapgo/internal/cli"
	"github.com/katalvlaran/gapgo/sssp"
)

func main() {
	fs, f := cli.NewFlagSet("gapgo-sssp")
	delta := fs.Int64("d", 1, "delta-stepping bucket width")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(cli.ExitSuccess)
		}
		os.Exit(cli.ExitArgError)
	}
	if f.Help {
		fs.Usage()
		os.Exit(cli.ExitSuccess)
	}

	g, err := f.LoadGraph()
	if err != nil {
		log.Printf("gapgo-sssp: %v", err)
		os.Exit(cli.ExitArgError)
	}

	source := cli.ResolveSource(g, f)
	dist := bench.RunTrials(f.Trials, func() []int64 {
		return sssp.Run(g, source, sssp.WithDelta(*delta))
	}, f.Analysis, os.Stdout)

	if f.Analysis {
		verifier := bench.SSSPVerifier{Infinity: sssp.Infinity}
		if err := verifier.Verify(g, bench.SSSPParams{Source: source}, dist); err != nil {
			log.Printf("gapgo-sssp: verification failed: %v", err)
			os.Exit(cli.ExitVerificationError)
		}
		log.Printf("gapgo-sssp: verification passed")
	}
}
