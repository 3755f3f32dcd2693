package grammar

import (
	"bytes"

	"github.com/ghettovoice/urlkit/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed escapes are kept as is.
func Unescape[T constraints.Byteseq](s T) T {
	return unescape(s, false)
}

// UnescapeForm is like [Unescape] but also converts '+' into space,
// as it is done for application/x-www-form-urlencoded strings.
func UnescapeForm[T constraints.Byteseq](s T) T {
	return unescape(s, true)
}

func unescape[T constraints.Byteseq](s T, plusAsSpace bool) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case s[i] == '+' && plusAsSpace:
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// Already escaped sequences are kept untouched, so Escape is safe to apply to raw component values.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	return escape(s, shouldEscape, true)
}

// Encode is like [Escape] but escapes every matched char including '%',
// it is used for decoded values that must survive a decode round trip.
func Encode[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	return escape(s, shouldEscape, false)
}

func escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool, keepEscaped bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case keepEscaped && s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphaChar checks ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsAlphanumChar checks ALPHA / DIGIT rule.
func IsAlphanumChar(c byte) bool {
	return IsAlphaChar(c) || '0' <= c && c <= '9'
}

// IsCharUnreserved checks RFC 3986 unreserved rule.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}

// IsSubDelimChar checks RFC 3986 sub-delims rule.
func IsSubDelimChar(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// IsSchemeChar checks chars allowed in scheme after the first ALPHA.
func IsSchemeChar(c byte) bool {
	return IsAlphanumChar(c) || c == '+' || c == '-' || c == '.'
}

// IsUserCharUnreserved checks chars allowed in the user part of userinfo.
func IsUserCharUnreserved(c byte) bool {
	return IsCharUnreserved(c) || IsSubDelimChar(c)
}

// IsPasswdCharUnreserved checks chars allowed in the password part of userinfo.
func IsPasswdCharUnreserved(c byte) bool {
	return IsUserCharUnreserved(c) || c == ':'
}

// IsPathCharUnreserved checks pchar rule extended with the segment separator.
func IsPathCharUnreserved(c byte) bool {
	return IsCharUnreserved(c) || IsSubDelimChar(c) || c == ':' || c == '@' || c == '/'
}

// IsSegmentCharUnreserved checks chars allowed inside a single path segment.
func IsSegmentCharUnreserved(c byte) bool {
	return c != '/' && IsPathCharUnreserved(c)
}

// IsFragmentCharUnreserved checks fragment rule.
func IsFragmentCharUnreserved(c byte) bool {
	return IsPathCharUnreserved(c) || c == '?'
}

// IsQueryKeyCharUnreserved checks chars that are kept as is in query keys.
func IsQueryKeyCharUnreserved(c byte) bool { return IsCharUnreserved(c) }

// IsQueryValueCharUnreserved checks chars that are kept as is in query values.
func IsQueryValueCharUnreserved(c byte) bool {
	switch c {
	case '/', '?', ':', '@', ',', ';':
		return true
	}
	return IsCharUnreserved(c)
}

// IsRegNameChar checks chars allowed in a registered host name, percent escapes aside.
func IsRegNameChar(c byte) bool {
	return IsCharUnreserved(c) || IsSubDelimChar(c)
}
