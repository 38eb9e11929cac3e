// Package cli holds the flag surface and graph-loading logic shared by
// every cmd/gapgo-* binary (§6): -h -f -g -u -s -n -r -a -m.
// Each binary's main.go parses these plus its own kernel-specific
// extras (such as -k or -d), then calls LoadGraph once before handing the result to
// bench.RunTrials and a kernel package.
package cli
