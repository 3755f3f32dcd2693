package uri

import (
	"net/http"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/util"
)

// RequestContext holds the parts of an incoming HTTP request a URL is built from.
type RequestContext struct {
	// Host is the value of the Host header, "host[:port]".
	Host string
	// RequestURI is the request target, usually "/path?query".
	RequestURI string
	// TLS reports whether the request was received over TLS.
	TLS bool
	// ForwardedProto is the value of the X-Forwarded-Proto header, if any.
	ForwardedProto string
}

// RequestContextFromHTTP fills [RequestContext] from r.
func RequestContextFromHTTP(r *http.Request) RequestContext {
	rc := RequestContext{
		Host:           r.Host,
		RequestURI:     r.RequestURI,
		TLS:            r.TLS != nil,
		ForwardedProto: r.Header.Get("X-Forwarded-Proto"),
	}
	if rc.RequestURI == "" && r.URL != nil {
		rc.RequestURI = r.URL.RequestURI()
	}
	return rc
}

// FromRequest builds the URL the request was addressed to.
//
// The scheme is "https" for TLS requests, otherwise the first protocol
// of the forwarded proto when it is a valid scheme, otherwise "http".
func FromRequest(rc RequestContext) (*URL, error) {
	u := NewURL()
	if rc.RequestURI != "" {
		if err := u.SetURI(rc.RequestURI); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if rc.Host != "" {
		h, err := ParseHost(rc.Host)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.SetHost(h)
	}
	u.SetScheme(NewScheme(rc.scheme()))
	return u, nil
}

func (rc RequestContext) scheme() string {
	if rc.TLS {
		return "https"
	}
	proto, _, _ := strings.Cut(rc.ForwardedProto, ",")
	proto = util.LCase(strings.TrimSpace(proto))
	if NewScheme(proto).IsValid() {
		return proto
	}
	return "http"
}
