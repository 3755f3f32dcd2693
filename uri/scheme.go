package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/util"
)

// Scheme is the scheme component of [URL], e.g. "https".
// A nil or empty scheme is zero.
type Scheme struct {
	name string
}

// NewScheme returns a scheme with the given name.
func NewScheme(name string) *Scheme { return &Scheme{name: name} }

// Name returns the scheme name as it was set.
func (s *Scheme) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Set replaces the scheme name.
func (s *Scheme) Set(name string) *Scheme {
	s.name = name
	return s
}

// IsZero reports whether the scheme is nil or empty.
func (s *Scheme) IsZero() bool { return s == nil || s.name == "" }

// IsValid reports whether the scheme name matches RFC 3986 scheme rule.
func (s *Scheme) IsValid() bool {
	if s.IsZero() || !grammar.IsAlphaChar(s.name[0]) {
		return false
	}
	for i := 1; i < len(s.name); i++ {
		if !grammar.IsSchemeChar(s.name[i]) {
			return false
		}
	}
	return true
}

// RenderTo writes the scheme name to w.
func (s *Scheme) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if s.IsZero() {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, s.name))
}

// Render returns the scheme name.
func (s *Scheme) Render(*RenderOptions) string { return s.Name() }

// String returns the scheme name.
func (s *Scheme) String() string { return s.Name() }

// Format implements fmt.Formatter for custom formatting of the scheme.
func (s *Scheme) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, s.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(s.String()))
	default:
		type hideMethods Scheme
		type Scheme hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Scheme)(s))
	}
}

// Clone returns a copy of the scheme.
func (s *Scheme) Clone() *Scheme {
	if s == nil {
		return nil
	}
	s2 := *s
	return &s2
}

// Equal compares schemes case-insensitively.
// It accepts [Scheme] and *[Scheme].
func (s *Scheme) Equal(val any) bool {
	var other *Scheme
	switch v := val.(type) {
	case Scheme:
		other = &v
	case *Scheme:
		other = v
	default:
		return false
	}

	if s == other {
		return true
	} else if s == nil || other == nil {
		return false
	}
	return util.EqFold(s.name, other.name)
}

// MarshalText implements [encoding.TextMarshaler].
func (s *Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scheme) UnmarshalText(text []byte) error {
	s.name = string(text)
	return nil
}
