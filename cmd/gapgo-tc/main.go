// Command gapgo-tc runs ordered triangle counting over a loaded or
// generated graph, per the shared CLI surface in §6.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/gapgo/bench"
	"github.com/katalvlaran/gapgo/internal/cli"
	"github.com/katalvlaran/gapgo/tc"
)

func main() {
	fs, f := cli.NewFlagSet("gapgo-tc")
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
		log.Printf("gapgo-tc: %v", err)
		os.Exit(cli.ExitArgError)
	}

	var countErr error
	count := bench.RunTrials(f.Trials, func() int64 {
		n, err := tc.Run(g)
		if err != nil {
			countErr = err
		}

		return n
	}, f.Analysis, os.Stdout)
	if countErr != nil {
		log.Printf("gapgo-tc: %v", countErr)
		os.Exit(cli.ExitUnsupportedCombo)
	}

	if f.Analysis {
		if err := (bench.TCVerifier{}).Verify(g, nil, count); err != nil {
			log.Printf("gapgo-tc: verification failed: %v", err)
			os.Exit(cli.ExitVerificationError)
		}
		log.Printf("gapgo-tc: verification passed")
	}
}
