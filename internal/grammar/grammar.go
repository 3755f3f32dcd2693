// Package grammar implements low level URL grammar helpers:
// percent escaping, form decoding and splitting of URL strings into raw components.
package grammar

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/urlkit/internal/errorutil"

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
