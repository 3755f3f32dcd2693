package uri_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urlkit/uri"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		rc      uri.RequestContext
		want    string
		wantErr error
	}{
		{
			"plain",
			uri.RequestContext{Host: "example.com", RequestURI: "/p?q=1"},
			"http://example.com/p?q=1",
			nil,
		},
		{
			"tls wins over forwarded proto",
			uri.RequestContext{Host: "example.com", RequestURI: "/", TLS: true, ForwardedProto: "http"},
			"https://example.com/",
			nil,
		},
		{
			"forwarded proto",
			uri.RequestContext{Host: "example.com", RequestURI: "/", ForwardedProto: "HTTPS, http"},
			"https://example.com/",
			nil,
		},
		{
			"forwarded websocket",
			uri.RequestContext{Host: "example.com", RequestURI: "/ws", ForwardedProto: "wss"},
			"wss://example.com/ws",
			nil,
		},
		{
			"invalid forwarded proto",
			uri.RequestContext{Host: "example.com", RequestURI: "/", ForwardedProto: "bad proto"},
			"http://example.com/",
			nil,
		},
		{
			"host with port",
			uri.RequestContext{Host: "example.com:8080", RequestURI: "/p#f"},
			"http://example.com:8080/p#f",
			nil,
		},
		{
			"absolute request target",
			uri.RequestContext{Host: "example.com", RequestURI: "http://proxy.local/p?a=1"},
			"http://example.com/p?a=1",
			nil,
		},
		{
			"no request uri",
			uri.RequestContext{Host: "example.com"},
			"http://example.com",
			nil,
		},
		{
			"bad host",
			uri.RequestContext{Host: "example.com:bad", RequestURI: "/"},
			"",
			uri.ErrMalformedInput,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.FromRequest(c.rc)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.FromRequest(%+v) error = %v, want %v\ndiff (-got +want):\n%v", c.rc, err, c.wantErr, diff)
			}
			if got := u.String(); got != c.want {
				t.Errorf("uri.FromRequest(%+v) = %q, want %q", c.rc, got, c.want)
			}
		})
	}
}

func TestRequestContextFromHTTP(t *testing.T) {
	t.Parallel()

	tlsReq := httptest.NewRequest(http.MethodGet, "https://example.com/p?q=1", nil)
	fwdReq := httptest.NewRequest(http.MethodGet, "/a", nil)
	fwdReq.Host = "example.org"
	fwdReq.Header.Set("X-Forwarded-Proto", "https")
	clientReq := &http.Request{
		Host:   "example.net",
		URL:    &url.URL{Path: "/x", RawQuery: "y=1"},
		Header: http.Header{},
	}

	cases := []struct {
		name   string
		req    *http.Request
		wantRC uri.RequestContext
		want   string
	}{
		{
			"tls",
			tlsReq,
			uri.RequestContext{Host: "example.com", RequestURI: "https://example.com/p?q=1", TLS: true},
			"https://example.com/p?q=1",
		},
		{
			"forwarded",
			fwdReq,
			uri.RequestContext{Host: "example.org", RequestURI: "/a", ForwardedProto: "https"},
			"https://example.org/a",
		},
		{
			"client request",
			clientReq,
			uri.RequestContext{Host: "example.net", RequestURI: "/x?y=1"},
			"http://example.net/x?y=1",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			rc := uri.RequestContextFromHTTP(c.req)
			if diff := cmp.Diff(rc, c.wantRC); diff != "" {
				t.Errorf("uri.RequestContextFromHTTP() = %+v, want %+v\ndiff (-got +want):\n%v", rc, c.wantRC, diff)
			}
			u, err := uri.FromRequest(rc)
			if err != nil {
				t.Fatalf("uri.FromRequest() error = %v, want nil", err)
			}
			if got := u.String(); got != c.want {
				t.Errorf("uri.FromRequest() = %q, want %q", got, c.want)
			}
		})
	}
}
