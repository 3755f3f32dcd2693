package uri

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/constraints"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/ioutil"
	"github.com/ghettovoice/urlkit/internal/util"
)

// redactedPasswd replaces the password in redacted output.
const redactedPasswd = "xxxxx"

// AuthInfo is the userinfo component of [URL]: a username and an optional password.
// Values are kept as provided, existing percent escapes are preserved on render.
type AuthInfo struct {
	user, passwd string
	hasPasswd    bool
}

// NewAuthInfo returns an auth info with the username and no password.
func NewAuthInfo(user string) *AuthInfo {
	return &AuthInfo{user: user}
}

// NewAuthInfoPassword returns an auth info with the username and password.
func NewAuthInfoPassword(user, passwd string) *AuthInfo {
	return &AuthInfo{user: user, passwd: passwd, hasPasswd: true}
}

// ParseAuthInfo parses "user[:password][@]" string s.
func ParseAuthInfo[T constraints.Byteseq](s T) (*AuthInfo, error) {
	src := strings.TrimSuffix(string(s), "@")
	if src == "" {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	user, passwd, hasPasswd := strings.Cut(src, ":")
	return &AuthInfo{user: user, passwd: passwd, hasPasswd: hasPasswd}, nil
}

// Username returns the username.
func (ai *AuthInfo) Username() string {
	if ai == nil {
		return ""
	}
	return ai.user
}

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (ai *AuthInfo) Password() (string, bool) {
	if ai == nil {
		return "", false
	}
	return ai.passwd, ai.hasPasswd
}

// SetUsername replaces the username.
func (ai *AuthInfo) SetUsername(user string) *AuthInfo {
	ai.user = user
	return ai
}

// SetPassword sets the password.
func (ai *AuthInfo) SetPassword(passwd string) *AuthInfo {
	ai.passwd, ai.hasPasswd = passwd, true
	return ai
}

// ClearPassword removes the password.
func (ai *AuthInfo) ClearPassword() *AuthInfo {
	ai.passwd, ai.hasPasswd = "", false
	return ai
}

// IsZero reports whether the auth info has neither username nor password.
func (ai *AuthInfo) IsZero() bool { return ai == nil || ai.user == "" && !ai.hasPasswd }

func shouldEscapeUserChar(c byte) bool { return !grammar.IsUserCharUnreserved(c) }

func shouldEscapePasswdChar(c byte) bool { return !grammar.IsPasswdCharUnreserved(c) }

// RenderTo writes "user[:password]@" to w.
// Nothing is written for zero auth info.
func (ai *AuthInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if ai.IsZero() {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(grammar.Escape(ai.user, shouldEscapeUserChar)) //nolint:errcheck
	if ai.hasPasswd {
		cw.WriteByte(':') //nolint:errcheck
		if opts.IsRedact() {
			cw.WriteString(redactedPasswd) //nolint:errcheck
		} else {
			cw.WriteString(grammar.Escape(ai.passwd, shouldEscapePasswdChar)) //nolint:errcheck
		}
	}
	cw.WriteByte('@') //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the auth info.
func (ai *AuthInfo) Render(opts *RenderOptions) string {
	if ai.IsZero() {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ai.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the auth info.
func (ai *AuthInfo) String() string { return ai.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the auth info.
// The password is always redacted except for "%+s".
func (ai *AuthInfo) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			ai.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, ai.Render(&RenderOptions{Redact: true}))
	case 'q':
		fmt.Fprint(f, strconv.Quote(ai.Render(&RenderOptions{Redact: true})))
	default:
		type hideMethods AuthInfo
		type AuthInfo hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*AuthInfo)(ai))
	}
}

// Clone returns a copy of the auth info.
func (ai *AuthInfo) Clone() *AuthInfo {
	if ai == nil {
		return nil
	}
	ai2 := *ai
	return &ai2
}

// Equal compares auth infos by username and password.
// It accepts [AuthInfo] and *[AuthInfo].
func (ai *AuthInfo) Equal(val any) bool {
	var other *AuthInfo
	switch v := val.(type) {
	case AuthInfo:
		other = &v
	case *AuthInfo:
		other = v
	default:
		return false
	}

	if ai == other {
		return true
	} else if ai == nil || other == nil {
		return false
	}
	return ai.user == other.user && ai.passwd == other.passwd && ai.hasPasswd == other.hasPasswd
}

// MarshalText implements [encoding.TextMarshaler].
func (ai *AuthInfo) MarshalText() ([]byte, error) {
	return []byte(ai.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ai *AuthInfo) UnmarshalText(text []byte) error {
	ai2, err := ParseAuthInfo(text)
	if err != nil {
		*ai = AuthInfo{}
		if errors.Is(err, ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(err)
	}
	*ai = *ai2
	return nil
}
