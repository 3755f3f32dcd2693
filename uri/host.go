package uri

import (
	"errors"
	"fmt"
	"io"
	"net"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/urlkit/internal/constraints"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/util"
)

// Host is the host component of [URL]: a host name or IP literal and an optional port.
type Host struct {
	name    string
	ip      net.IP
	port    uint16
	hasPort bool
}

// NewHost returns a host without a port.
// IPv6 literal may be enclosed in square brackets.
func NewHost(name string) *Host {
	h := &Host{}
	return h.SetName(name)
}

// NewHostPort returns a host with the port.
func NewHostPort(name string, port uint16) *Host {
	return NewHost(name).SetPort(port)
}

// ParseHost parses "host[:port]" string s.
// An empty port after the colon is ignored.
func ParseHost[T constraints.Byteseq](s T) (*Host, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	name, port, hasPort, err := grammar.SplitHostPort(string(s))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	h := NewHost(name)
	if hasPort {
		h.SetPort(port)
	}
	return h, nil
}

// Name returns the host name, IPv6 literals are returned without brackets.
func (h *Host) Name() string {
	if h == nil {
		return ""
	}
	return h.name
}

// IP returns the parsed IP when the host is an IP literal, otherwise nil.
func (h *Host) IP() net.IP {
	if h == nil {
		return nil
	}
	return h.ip
}

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (h *Host) Port() (uint16, bool) {
	if h == nil {
		return 0, false
	}
	return h.port, h.hasPort
}

// SetName replaces the host name.
func (h *Host) SetName(name string) *Host {
	name = strings.TrimSuffix(strings.TrimPrefix(name, "["), "]")
	ip := net.ParseIP(name)
	if v := ip.To4(); v != nil {
		ip = v
	}
	h.name, h.ip = name, ip
	return h
}

// SetPort sets the port.
func (h *Host) SetPort(port uint16) *Host {
	h.port, h.hasPort = port, true
	return h
}

// ClearPort removes the port.
func (h *Host) ClearPort() *Host {
	h.port, h.hasPort = 0, false
	return h
}

// IsZero reports whether the host has neither name nor port.
func (h *Host) IsZero() bool { return h == nil || h.name == "" && !h.hasPort }

// IsValid reports whether the host is an IP literal or a syntactically valid domain name.
func (h *Host) IsValid() bool {
	if h == nil {
		return false
	}
	if h.ip != nil {
		return true
	}
	if _, ok := dns.IsDomainName(h.name); !ok {
		return false
	}
	for i := 0; i < len(h.name); i++ {
		if c := h.name[i]; c != '%' && !grammar.IsRegNameChar(c) {
			return false
		}
	}
	return true
}

// IsFQDN reports whether the host name is a fully qualified domain name, i.e. ends with a dot.
func (h *Host) IsFQDN() bool { return h != nil && h.ip == nil && dns.IsFqdn(h.name) }

// FQDN returns the fully qualified form of the host name.
// IP literals are returned as is.
func (h *Host) FQDN() string {
	if h == nil || h.name == "" {
		return ""
	}
	if h.ip != nil {
		return h.name
	}
	return dns.Fqdn(h.name)
}

// RenderTo writes "host[:port]" to w, IPv6 literals are enclosed in square brackets.
func (h *Host) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if h.IsZero() {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, h.String()))
}

// Render returns the string representation of the host.
func (h *Host) Render(*RenderOptions) string { return h.String() }

// String returns the string representation of the host.
func (h *Host) String() string {
	if h.IsZero() {
		return ""
	}
	name := h.name
	if strings.Contains(name, ":") {
		name = "[" + name + "]"
	}
	if !h.hasPort {
		return name
	}
	return name + ":" + strconv.Itoa(int(h.port))
}

// Format implements fmt.Formatter for custom formatting of the host.
func (h *Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, h.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, h.String())
			return
		}

		type hideMethods Host
		type Host hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Host)(h))
	}
}

// Clone returns a deep copy of the host including the underlying IP slice.
func (h *Host) Clone() *Host {
	if h == nil {
		return nil
	}
	h2 := *h
	h2.ip = slices.Clone(h.ip)
	return &h2
}

// Equal reports whether the host equals the provided value, accepting [Host] and *[Host].
// Names are compared case-insensitively, IP literals are compared as addresses.
func (h *Host) Equal(val any) bool {
	var other *Host
	switch v := val.(type) {
	case Host:
		other = &v
	case *Host:
		other = v
	default:
		return false
	}

	if h == other {
		return true
	} else if h == nil || other == nil {
		return false
	}

	var nameMatch bool
	switch {
	case h.ip == nil && other.ip == nil:
		nameMatch = util.EqFold(h.name, other.name)
	case h.ip != nil && other.ip != nil:
		nameMatch = h.ip.Equal(other.ip)
	default:
		return false
	}
	return nameMatch && h.port == other.port && h.hasPort == other.hasPort
}

// MarshalText implements [encoding.TextMarshaler].
func (h *Host) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (h *Host) UnmarshalText(text []byte) error {
	h2, err := ParseHost(text)
	if err != nil {
		*h = Host{}
		if errors.Is(err, ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}
	*h = *h2
	return nil
}
