package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/grammar"
)

// Path is the path component of [URL].
// The path is kept raw, it is escaped on render with existing percent escapes preserved.
type Path struct {
	raw string
	enc Encoder
}

// NewPath returns a path with the raw value.
func NewPath(raw string) *Path { return &Path{raw: raw} }

// Value returns the raw path.
func (p *Path) Value() string {
	if p == nil {
		return ""
	}
	return p.raw
}

// Set replaces the raw path.
func (p *Path) Set(raw string) *Path {
	p.raw = raw
	return p
}

// SetEncoder sets the encoder used by [Path.AppendSegment].
// Nil resets it to the default one that escapes everything except RFC 3986 pchar.
func (p *Path) SetEncoder(enc Encoder) *Path {
	p.enc = enc
	return p
}

// IsZero reports whether the path is nil or empty.
func (p *Path) IsZero() bool { return p == nil || p.raw == "" }

// IsAbsolute reports whether the path starts with '/'.
func (p *Path) IsAbsolute() bool { return p != nil && strings.HasPrefix(p.raw, "/") }

// Segments returns unescaped '/' separated segments of the path.
// The leading slash of the absolute path does not produce an empty segment.
func (p *Path) Segments() []string {
	if p.IsZero() {
		return nil
	}
	segs := strings.Split(strings.TrimPrefix(p.raw, "/"), "/")
	for i := range segs {
		segs[i] = grammar.Unescape(segs[i])
	}
	return segs
}

func shouldEscapeSegmentChar(c byte) bool { return !grammar.IsSegmentCharUnreserved(c) }

// AppendSegment encodes seg and appends it to the path separated by '/'.
func (p *Path) AppendSegment(seg string) *Path {
	var enc string
	if p.enc != nil {
		enc = p.enc.Encode(seg, true)
	} else {
		enc = grammar.Encode(seg, shouldEscapeSegmentChar)
	}

	switch {
	case p.raw == "":
		p.raw = enc
	case strings.HasSuffix(p.raw, "/"):
		p.raw += enc
	default:
		p.raw += "/" + enc
	}
	return p
}

func shouldEscapePathChar(c byte) bool { return !grammar.IsPathCharUnreserved(c) }

// RenderTo writes the escaped path to w.
func (p *Path) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if p.IsZero() {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, p.String()))
}

// Render returns the escaped path.
func (p *Path) Render(*RenderOptions) string { return p.String() }

// String returns the escaped path.
func (p *Path) String() string {
	if p.IsZero() {
		return ""
	}
	return grammar.Escape(p.raw, shouldEscapePathChar)
}

// Format implements fmt.Formatter for custom formatting of the path.
func (p *Path) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
	default:
		type hideMethods Path
		type Path hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Path)(p))
	}
}

// Clone returns a copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	p2 := *p
	return &p2
}

// Equal compares escaped forms of the paths.
// It accepts [Path] and *[Path].
func (p *Path) Equal(val any) bool {
	var other *Path
	switch v := val.(type) {
	case Path:
		other = &v
	case *Path:
		other = v
	default:
		return false
	}

	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.String() == other.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The encoder of the receiver is kept.
func (p *Path) UnmarshalText(text []byte) error {
	p.raw = string(text)
	return nil
}
