// Package grammar holds the lexical rules shared by the URI scanner:
// grammar errors and the state graph the scanner walks.
package grammar

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/gouri/internal/errorutil"

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrMalformedInput Error = "malformed input"
	ErrUnexpectState  Error = "unexpected scanner state"
)

// NewMalformedInputErr wraps the args with [ErrMalformedInput].
// See [errorutil.NewWrapperError] for the accepted argument patterns.
func NewMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// Delimiters of the generic URI syntax recognised by the scanner.
const (
	SchemeDelim   = ':'
	UserInfoDelim = '@'
	PortDelim     = ':'
	PathDelim     = '/'
	QueryDelim    = '?'
	FragmentDelim = '#'

	AuthorityPrefix = "//"
)
