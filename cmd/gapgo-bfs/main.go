// Command gapgo-bfs runs direction-optimizing BFS over a loaded or
// generated graph, per the shared CLI surface in §6.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/gapgo/bench"
	"github.com/katalvlaran/gapgo/bfs"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/cli"
)

func main() {
	fs, f := cli.NewFlagSet("gapgo-bfs")
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
		log.Printf("gapgo-bfs: %v", err)
		os.Exit(cli.ExitArgError)
	}

	source := cli.ResolveSource(g, f)
	var runErr error
	parent := bench.RunTrials(f.Trials, func() []edge.NodeID {
		p, err := bfs.Run(g, source)
		if err != nil {
			runErr = err
		}

		return p
	}, f.Analysis, os.Stdout)
	if runErr != nil {
		log.Printf("gapgo-bfs: %v", runErr)
		os.Exit(cli.ExitUnsupportedCombo)
	}

	if f.Analysis {
		if err := (bench.BFSVerifier{}).Verify(g, bench.BFSParams{Source: source}, parent); err != nil {
			log.Printf("gapgo-bfs: verification failed: %v", err)
			os.Exit(cli.ExitVerificationError)
		}
		log.Printf("gapgo-bfs: verification passed")
	}
}
