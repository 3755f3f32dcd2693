package pairs

//go:generate go tool mockgen -typed -destination=../internal/testutil/encmock/encoder.go -package=encmock . Encoder

import (
	"net/url"

	"github.com/ghettovoice/urlkit/internal/grammar"
)

// Encoder encodes keys and values of pairs during rendering.
type Encoder interface {
	// Encode returns encoded representation of s.
	// isKey is true when s is a key.
	Encode(s string, isKey bool) string
}

// EncoderFunc is an adapter to allow the use of ordinary functions as [Encoder].
type EncoderFunc func(s string, isKey bool) string

// Encode calls f(s, isKey).
func (f EncoderFunc) Encode(s string, isKey bool) string { return f(s, isKey) }

var (
	// RFC3986Encoder percent-encodes keys and values according to RFC 3986.
	// Keys keep only unreserved characters, values additionally keep "/?:@,;".
	// Space is encoded as "%20". It is the default encoder.
	RFC3986Encoder Encoder = EncoderFunc(encodeRFC3986)
	// FormEncoder encodes keys and values as application/x-www-form-urlencoded,
	// space is encoded as '+'.
	FormEncoder Encoder = EncoderFunc(encodeForm)
)

func shouldEscapeKeyChar(c byte) bool { return !grammar.IsQueryKeyCharUnreserved(c) }

func shouldEscapeValueChar(c byte) bool { return !grammar.IsQueryValueCharUnreserved(c) }

func encodeRFC3986(s string, isKey bool) string {
	if isKey {
		return grammar.Encode(s, shouldEscapeKeyChar)
	}
	return grammar.Encode(s, shouldEscapeValueChar)
}

func encodeForm(s string, _ bool) string { return url.QueryEscape(s) }
