package cli

import "errors"

// Exit codes per §6: 0 success, -1 argument error, negative codes for
// unsupported combinations (e.g. in-place + weighted).
const (
	ExitSuccess           = 0
	ExitArgError          = -1
	ExitUnsupportedCombo  = -2
	ExitVerificationError = -3
)

// ErrNoGraphSource is returned when none (or more than one) of -f, -g,
// -u was given.
var ErrNoGraphSource = errors.New("cli: specify exactly one of -f, -g, -u")

// ErrInPlaceWeightedFile is returned when -m is requested against a
// weighted input file, which the in-place builder cannot construct.
var ErrInPlaceWeightedFile = errors.New("cli: -m (in-place) is not supported for weighted input")
