// Package reader supplies edge-list sources for the builder: the
// Reader interface the spec treats as an out-of-scope contract, plus
// concrete parsers for the file formats named in its CLI surface
// (.el, .wel, .gr, .graph, .sg, .wsg) and a Writer for the two binary
// serialized formats.
//
// What
//
//   - Reader: Read() (edge.List, int, error) — the edge list plus the
//     vertex count N, when the format states it explicitly (.graph,
//     .sg, .wsg); formats that don't (.el, .wel, .gr) return N=0 and
//     let the builder infer it from max_node_id.
//   - Open(path) dispatches on the file's suffix to the matching
//     parser, mirroring the CLI's "-f path" flag (§6).
//   - WriteSerialized persists a csr.Graph in the .sg/.wsg binary
//     layout, the Writer counterpart the distilled spec gestures at
//     under "Convert-tool outputs" without detailing.
//
// Why
//
//	The distilled spec explicitly scopes textual/binary parsing out as
//	"external collaborators via their interfaces only" — but a complete
//	repo needs at least one real implementation of the interface it
//	defines, or cmd/gapgo-* has nothing to read a -f path with. We
//	supplement accordingly (see SPEC_FULL.md's reader section).
package reader
