package reader

import "errors"

// Sentinel errors for edge-list and serialized-graph parsing.
var (
	// ErrUnknownSuffix is returned by Open when path's extension does
	// not match any recognized format.
	ErrUnknownSuffix = errors.New("reader: unrecognized file suffix")

	// ErrMalformedLine is returned when a text-format line does not
	// parse into the expected number of fields.
	ErrMalformedLine = errors.New("reader: malformed line")

	// ErrWidthMismatch describes a .sg/.wsg file whose on-disk
	// NodeID/Weight width is not 32 bits. No reader in this package
	// returns it: the serialized readers read 32-bit fields without
	// checking the file's widths.
	ErrWidthMismatch = errors.New("reader: serialized graph requires 32-bit NodeID and Weight")
)
