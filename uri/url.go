package uri

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/constraints"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/ioutil"
	"github.com/ghettovoice/urlkit/internal/types"
	"github.com/ghettovoice/urlkit/internal/util"
)

// URL is a mutable structured URL built of optional components.
// Each component is an independent slot, a nil slot is absent and is not rendered.
// The string form is assembled on demand from the components.
//
// URL is not safe for concurrent modification, use [URL.Clone] to share it.
type URL struct {
	scheme   *Scheme
	authInfo *AuthInfo
	host     *Host
	path     *Path
	query    *Query
	fragment *Fragment

	schemeless bool
	enc        Encoder
}

// NewURL returns an empty URL.
func NewURL() *URL { return &URL{} }

// Parse parses URL string src (string or []byte).
//
// Parsing is lenient: only a malformed port fails with [ErrMalformedInput].
// Components absent in src leave the corresponding slots unset.
// A source starting with "//" produces a schemeless URL.
func Parse[T constraints.Byteseq](src T) (*URL, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	parts, err := grammar.SplitURL(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	u := &URL{}
	switch {
	case parts.HasScheme:
		u.scheme = NewScheme(parts.Scheme)
	case strings.HasPrefix(string(src), "//"):
		u.schemeless = true
	}
	if parts.HasUser || parts.HasPassword {
		u.authInfo = &AuthInfo{user: parts.User, passwd: parts.Password, hasPasswd: parts.HasPassword}
	}
	if parts.HasHost || parts.HasAuthority {
		u.host = NewHost(parts.Host)
		if parts.HasPort {
			u.host.SetPort(parts.Port)
		}
	}
	u.applyURI(&parts)
	return u, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse[T constraints.Byteseq](src T) *URL {
	return util.Must2(Parse(src))
}

// applyURI sets the path, query and fragment present in parts, other slots are untouched.
func (u *URL) applyURI(parts *grammar.URLParts) {
	if parts.Path != "" {
		u.SetPath(NewPath(parts.Path))
	}
	if parts.Query != "" {
		u.SetQuery(ParseQuery(parts.Query))
	}
	if parts.Fragment != "" {
		u.SetFragment(&Fragment{val: parts.Fragment})
	}
}

// SetURI replaces path, query and fragment with the ones parsed from the request URI s,
// e.g. "/path?query#fragment". Only components present in s are replaced,
// the rest of the URL is kept.
// On error the URL is not modified.
func (u *URL) SetURI(s string) error {
	parts, err := grammar.SplitURL(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	u.applyURI(&parts)
	return nil
}

// IsSchemeless reports whether the URL is rendered with the leading "//" instead of a scheme.
// It is true when the URL has no non-empty scheme and either it was parsed from
// a string starting with "//" or the scheme was cleared with [URL.SetScheme].
func (u *URL) IsSchemeless() bool {
	return u != nil && u.schemeless && u.scheme.IsZero()
}

// Scheme returns the scheme, creating an empty one if it is not set.
func (u *URL) Scheme() *Scheme {
	if u.scheme == nil {
		u.scheme = &Scheme{}
	}
	return u.scheme
}

// SetScheme sets the scheme.
// Nil or empty scheme switches the URL into schemeless mode, non-empty one switches it off.
func (u *URL) SetScheme(s *Scheme) *URL {
	u.scheme = s
	u.schemeless = s.IsZero()
	return u
}

// HasScheme reports whether the scheme slot is set.
func (u *URL) HasScheme() bool { return u != nil && u.scheme != nil }

// AuthInfo returns the auth info, creating an empty one if it is not set.
func (u *URL) AuthInfo() *AuthInfo {
	if u.authInfo == nil {
		u.authInfo = &AuthInfo{}
	}
	return u.authInfo
}

// SetAuthInfo sets the auth info, nil clears it.
func (u *URL) SetAuthInfo(ai *AuthInfo) *URL {
	u.authInfo = ai
	return u
}

// HasAuthInfo reports whether the auth info slot is set.
func (u *URL) HasAuthInfo() bool { return u != nil && u.authInfo != nil }

// Host returns the host, creating an empty one if it is not set.
func (u *URL) Host() *Host {
	if u.host == nil {
		u.host = &Host{}
	}
	return u.host
}

// SetHost sets the host, nil clears it.
func (u *URL) SetHost(h *Host) *URL {
	u.host = h
	return u
}

// HasHost reports whether the host slot is set.
func (u *URL) HasHost() bool { return u != nil && u.host != nil }

// Path returns the path, creating an empty one if it is not set.
func (u *URL) Path() *Path {
	if u.path == nil {
		u.SetPath(&Path{})
	}
	return u.path
}

// SetPath sets the path, nil clears it.
// The URL encoder, if any, is passed to the path.
func (u *URL) SetPath(p *Path) *URL {
	u.path = p
	if p != nil && u.enc != nil {
		p.SetEncoder(u.enc)
	}
	return u
}

// HasPath reports whether the path slot is set.
func (u *URL) HasPath() bool { return u != nil && u.path != nil }

// Query returns the query, creating an empty one if it is not set.
func (u *URL) Query() *Query {
	if u.query == nil {
		u.SetQuery(NewQuery())
	}
	return u.query
}

// SetQuery sets the query, nil clears it.
// The URL encoder, if any, is passed to the query.
func (u *URL) SetQuery(q *Query) *URL {
	u.query = q
	if q != nil && u.enc != nil {
		q.SetEncoder(u.enc)
	}
	return u
}

// HasQuery reports whether the query slot is set.
func (u *URL) HasQuery() bool { return u != nil && u.query != nil }

// Fragment returns the fragment, creating an empty one if it is not set.
func (u *URL) Fragment() *Fragment {
	if u.fragment == nil {
		u.fragment = &Fragment{}
	}
	return u.fragment
}

// SetFragment sets the fragment, nil clears it.
func (u *URL) SetFragment(f *Fragment) *URL {
	u.fragment = f
	return u
}

// HasFragment reports whether the fragment slot is set.
func (u *URL) HasFragment() bool { return u != nil && u.fragment != nil }

// Encoder returns the encoder set with [URL.SetEncoder].
func (u *URL) Encoder() Encoder {
	if u == nil {
		return nil
	}
	return u.enc
}

// SetEncoder sets the encoder of query and path, both the current and the ones set later.
// Nil keeps encoders of the current components and stops passing it to the new ones.
func (u *URL) SetEncoder(enc Encoder) *URL {
	u.enc = enc
	if enc == nil {
		return u
	}
	if u.path != nil {
		u.path.SetEncoder(enc)
	}
	if u.query != nil {
		u.query.SetEncoder(enc)
	}
	return u
}

// IsValid reports whether the URL is not empty and its scheme and host, when set, are valid.
func (u *URL) IsValid() bool {
	if u == nil || u.String() == "" {
		return false
	}
	if !u.scheme.IsZero() && !types.IsValid(u.scheme) {
		return false
	}
	if !u.host.IsZero() && !types.IsValid(u.host) {
		return false
	}
	return true
}

// RenderTo writes the URL to w.
//
// Components are written in order: "scheme://" (or "//" in schemeless mode) only when the host is set,
// auth info, host, path (prefixed with '/' after the host when it is relative),
// query and fragment.
func (u *URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.host != nil {
		switch {
		case u.IsSchemeless():
			cw.WriteString("//") //nolint:errcheck
		case !u.scheme.IsZero():
			cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.scheme.RenderTo(w, opts)) })
			cw.WriteString("://") //nolint:errcheck
		}
	}
	if u.authInfo != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.authInfo.RenderTo(w, opts)) })
	}
	if u.host != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.host.RenderTo(w, opts)) })
	}
	if u.path != nil {
		if u.host != nil && !u.path.IsAbsolute() {
			cw.WriteByte('/') //nolint:errcheck
		}
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.path.RenderTo(w, opts)) })
	}
	if u.query != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.query.RenderTo(w, opts)) })
	}
	if u.fragment != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.fragment.RenderTo(w, opts)) })
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URL.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// LogValue implements [slog.LogValuer], the password is redacted.
func (u *URL) LogValue() slog.Value {
	return slog.StringValue(u.Render(&RenderOptions{Redact: true}))
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// Equal compares string representations of the URLs.
// It accepts [URL], *[URL], [fmt.Stringer] and string.
func (u *URL) Equal(val any) bool {
	var other string
	switch v := val.(type) {
	case *URL:
		if u == v {
			return true
		} else if u == nil || v == nil {
			return false
		}
		other = v.String()
	case URL:
		other = v.String()
	case fmt.Stringer:
		other = v.String()
	case string:
		other = v
	default:
		return false
	}
	return u != nil && u.String() == other
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.scheme = types.Clone[*Scheme](u.scheme)
	u2.authInfo = types.Clone[*AuthInfo](u.authInfo)
	u2.host = types.Clone[*Host](u.host)
	u2.path = types.Clone[*Path](u.path)
	u2.query = types.Clone[*Query](u.query)
	u2.fragment = types.Clone[*Fragment](u.fragment)
	return &u2
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The encoder of the receiver is kept.
func (u *URL) UnmarshalText(text []byte) error {
	enc := u.enc
	u1, err := Parse(text)
	if err != nil {
		*u = URL{enc: enc}
		if errors.Is(err, ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}
	*u = URL{enc: enc}
	u.SetScheme(u1.scheme)
	u.schemeless = u1.schemeless
	u.authInfo, u.host = u1.authInfo, u1.host
	u.SetPath(u1.path).SetQuery(u1.query).SetFragment(u1.fragment)
	return nil
}
