package uri

import (
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// ErrMalformedInput is returned by [Parse] when the input has no scheme.
const ErrMalformedInput = grammar.ErrMalformedInput

// ErrInvalidArgument is the base of errors caused by misuse of the API.
const ErrInvalidArgument = errorutil.ErrInvalidArgument

// ErrMissingScheme is returned when a [URI] without a scheme is built.
// It wraps [ErrInvalidArgument].
var ErrMissingScheme = errorutil.NewInvalidArgumentError("missing scheme")
