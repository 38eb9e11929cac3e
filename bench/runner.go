package bench

import (
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/stat"
)

// RunTrials runs kernel trials times, timing each call, and returns the
// last call's result (the one callers typically feed to a Verifier or
// print). When analysis is true, mean/stddev timing stats are written
// to w after the final trial.
func RunTrials[T any](trials int, kernel func() T, analysis bool, w io.Writer) T {
	var last T
	durations := make([]float64, 0, trials)
	for iter := 0; iter < trials; iter++ {
		start := time.Now()
		last = kernel()
		durations = append(durations, time.Since(start).Seconds())
		if iter == trials-1 && analysis {
			printStats(w, durations)
		}
	}

	return last
}

// printStats reports trial count plus mean and standard deviation of
// per-trial wall-clock seconds.
func printStats(w io.Writer, durations []float64) {
	mean := stat.Mean(durations, nil)
	stddev := stat.StdDev(durations, nil)
	fmt.Fprintf(w, "trials=%d mean=%.6fs stddev=%.6fs\n", len(durations), mean, stddev)
}
