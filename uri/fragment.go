package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/grammar"
)

// Fragment is the fragment component of [URL].
type Fragment struct {
	val string
}

// NewFragment returns a fragment with the value.
// A leading '#' is stripped, use [Parse] to keep a fragment that starts with '#'.
func NewFragment(val string) *Fragment {
	return &Fragment{val: strings.TrimPrefix(val, "#")}
}

// Value returns the fragment value without '#'.
func (f *Fragment) Value() string {
	if f == nil {
		return ""
	}
	return f.val
}

// Set replaces the fragment value.
func (f *Fragment) Set(val string) *Fragment {
	f.val = strings.TrimPrefix(val, "#")
	return f
}

// IsZero reports whether the fragment is nil or empty.
func (f *Fragment) IsZero() bool { return f == nil || f.val == "" }

func shouldEscapeFragmentChar(c byte) bool { return !grammar.IsFragmentCharUnreserved(c) }

// RenderTo writes "#value" to w.
// Nothing is written for zero fragment.
func (f *Fragment) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if f.IsZero() {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, f.String()))
}

// Render returns the string representation of the fragment.
func (f *Fragment) Render(*RenderOptions) string { return f.String() }

// String returns "#value" or an empty string for zero fragment.
func (f *Fragment) String() string {
	if f.IsZero() {
		return ""
	}
	return "#" + grammar.Escape(f.val, shouldEscapeFragmentChar)
}

// Format implements fmt.Formatter for custom formatting of the fragment.
func (f *Fragment) Format(fs fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(fs, f.String())
	case 'q':
		fmt.Fprint(fs, strconv.Quote(f.String()))
	default:
		type hideMethods Fragment
		type Fragment hideMethods
		fmt.Fprintf(fs, fmt.FormatString(fs, verb), (*Fragment)(f))
	}
}

// Clone returns a copy of the fragment.
func (f *Fragment) Clone() *Fragment {
	if f == nil {
		return nil
	}
	f2 := *f
	return &f2
}

// Equal compares fragment values.
// It accepts [Fragment] and *[Fragment].
func (f *Fragment) Equal(val any) bool {
	var other *Fragment
	switch v := val.(type) {
	case Fragment:
		other = &v
	case *Fragment:
		other = v
	default:
		return false
	}

	if f == other {
		return true
	} else if f == nil || other == nil {
		return false
	}
	return f.val == other.val
}

// MarshalText implements [encoding.TextMarshaler].
func (f *Fragment) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Fragment) UnmarshalText(text []byte) error {
	f.Set(string(text))
	return nil
}
