package grammar

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/constraints"
	"github.com/ghettovoice/urlkit/internal/util"
)

// URLParts holds raw components of a URL string.
// Values are kept exactly as they appear in the input, no unescaping is done.
type URLParts struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Port     uint16
	Path     string
	Query    string
	Fragment string

	HasScheme, HasAuthority, HasUser, HasPassword, HasHost, HasPort, HasQuery, HasFragment bool
}

// SplitURL splits URL string src into raw components.
//
// The splitting follows the generic URI regular expression from RFC 3986 Appendix B:
//
//	^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?
//
// with two relaxations: a scheme candidate followed only by digits ("localhost:8080/path")
// is taken as host and port, and invalid host names are accepted as opaque text.
// The only failure is a port that is not a decimal number in range 0-65535.
func SplitURL[T constraints.Byteseq](src T) (URLParts, error) {
	var p URLParts
	s := string(src)

	if i := strings.IndexByte(s, '#'); i >= 0 {
		s, p.Fragment, p.HasFragment = s[:i], s[i+1:], true
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s, p.Query, p.HasQuery = s[:i], s[i+1:], true
	}

	scheme, rest, ok := cutScheme(s)
	switch {
	case ok:
		p.Scheme, p.HasScheme = scheme, true
		s = rest
	case scheme != "":
		// host:port without leading "//"
		authority, path := cutAuthority(s)
		if err := p.setAuthority(authority); err != nil {
			return URLParts{}, errtrace.Wrap(err)
		}
		p.Path = path
		return p, nil
	}

	if strings.HasPrefix(s, "//") {
		authority, path := cutAuthority(s[2:])
		if err := p.setAuthority(authority); err != nil {
			return URLParts{}, errtrace.Wrap(err)
		}
		s = path
	}
	p.Path = s
	return p, nil
}

// cutScheme extracts scheme from s.
// If the scheme candidate is followed by a port number, ok is false and scheme holds the candidate.
func cutScheme(s string) (scheme, rest string, ok bool) {
	if s == "" || !IsAlphaChar(s[0]) {
		return "", s, false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == ':' {
			port, _, _ := strings.Cut(s[i+1:], "/")
			if util.IsDigits(port) {
				return s[:i], s, false
			}
			return s[:i], s[i+1:], true
		}
		if !IsSchemeChar(c) {
			break
		}
	}
	return "", s, false
}

func cutAuthority(s string) (authority, path string) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func (p *URLParts) setAuthority(a string) error {
	p.HasAuthority = true
	if i := strings.LastIndexByte(a, '@'); i >= 0 {
		p.User, p.Password, p.HasPassword = strings.Cut(a[:i], ":")
		p.HasUser = true
		a = a[i+1:]
	}

	host, port, hasPort, err := SplitHostPort(a)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if host != "" {
		p.Host, p.HasHost = host, true
	}
	p.Port, p.HasPort = port, hasPort
	return nil
}

// SplitHostPort splits "host[:port]" string s.
// IPv6 literal hosts must be enclosed in square brackets, brackets are kept in the returned host.
// Empty port after the colon is treated as missing.
func SplitHostPort(s string) (host string, port uint16, hasPort bool, err error) {
	host = s
	var portStr string
	if strings.HasPrefix(s, "[") {
		if i := strings.IndexByte(s, ']'); i >= 0 {
			host = s[:i+1]
			if rest := s[i+1:]; strings.HasPrefix(rest, ":") {
				portStr, hasPort = rest[1:], true
			} else if rest != "" {
				host = s
			}
		}
	} else if i := strings.LastIndexByte(s, ':'); i >= 0 {
		host, portStr, hasPort = s[:i], s[i+1:], true
	}

	if !hasPort || portStr == "" {
		return host, 0, false, nil
	}
	if !util.IsDigits(portStr) {
		return "", 0, false, errtrace.Wrap(newMalformedInputErr("invalid port %q", portStr))
	}
	n, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, false, errtrace.Wrap(newMalformedInputErr("invalid port %q", portStr))
	}
	return host, uint16(n), true, nil
}
