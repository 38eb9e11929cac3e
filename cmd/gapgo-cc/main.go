// Command gapgo-cc runs Afforest connected components over a loaded or
// generated graph, per the shared CLI surface in §6.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/gapgo/bench"
	"github.com/katalvlaran/gapgo/cc"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/cli"
)

func main() {
	fs, f := cli.NewFlagSet("gapgo-cc")
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
		log.Printf("gapgo-cc: %v", err)
		os.Exit(cli.ExitArgError)
	}

	comp := bench.RunTrials(f.Trials, func() []edge.NodeID {
		return cc.Run(g)
	}, f.Analysis, os.Stdout)

	if f.Analysis {
		if err := (bench.CCVerifier{}).Verify(g, nil, comp); err != nil {
			log.Printf("gapgo-cc: verification failed: %v", err)
			os.Exit(cli.ExitVerificationError)
		}
		log.Printf("gapgo-cc: verification passed")
	}
}
