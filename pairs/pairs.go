package pairs

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urlkit/internal/constraints"
	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/ioutil"
	"github.com/ghettovoice/urlkit/internal/util"
)

// Options configures parsing and rendering of [Pairs].
// Nil options are equal to zero options.
type Options struct {
	// Prefix is an optional leading separator, e.g. '?' for URL query.
	// It is stripped on parse and prepended on render of non-empty pairs.
	// Zero value means no prefix.
	Prefix byte
	// AssignIfEmpty forces rendering of '=' for keys with empty values.
	AssignIfEmpty bool
	// Encoder encodes keys and values on render.
	// If nil, the [RFC3986Encoder] is used.
	Encoder Encoder
}

func (o *Options) encoder() Encoder {
	if o == nil || o.Encoder == nil {
		return RFC3986Encoder
	}
	return o.Encoder
}

// Pairs is an ordered container of key-value pairs.
// Keys are unique, setting of an existing key replaces its value in place.
// The zero value is an empty container ready to use.
type Pairs struct {
	keys []string
	vals map[string]Value
	opts Options
}

// New creates an empty [Pairs] with the given options.
func New(opts *Options) *Pairs {
	p := &Pairs{}
	if opts != nil {
		p.opts = *opts
	}
	return p
}

// Parse parses form-encoded string src into [Pairs].
// Parsing never fails, malformed tokens are either skipped or taken as keys with empty values.
// See package docs for the decoding rules.
func Parse[T constraints.Byteseq](src T, opts *Options) *Pairs {
	p := New(opts)
	s := string(src)
	if p.opts.Prefix != 0 && len(s) > 0 && s[0] == p.opts.Prefix {
		s = s[1:]
	}
	if s == "" {
		return p
	}

	rawKeys := grammar.RawFormKeys(s)
	for _, f := range grammar.DecodeForm(s) {
		key := repairKey(f.Key, f.List, rawKeys)
		if f.List {
			p.push(key, f.Value)
			continue
		}
		p.put(key, Scalar(f.Value))
	}
	return p
}

// repairKey restores periods in key mangled by the form decoding
// if such key is present among raw keys.
func repairKey(key string, list bool, rawKeys map[string]bool) string {
	if !strings.Contains(key, "_") {
		return key
	}
	cand := strings.ReplaceAll(key, "_", ".")
	if rawKeys[cand] || list && rawKeys[cand+"[]"] {
		return cand
	}
	return key
}

// FromMap creates [Pairs] from map m.
// Values are not decoded, keys are inserted in sorted order.
func FromMap(m map[string]Value, opts *Options) *Pairs {
	return New(opts).MergeMap(m)
}

// From creates [Pairs] from src. Supported sources are:
//   - nil: empty pairs;
//   - string or []byte: parsed with [Parse];
//   - *Pairs: values are copied;
//   - map[string]Value: see [FromMap];
//   - map[string]string: scalar values in sorted key order;
//   - map[string][]string or [url.Values]: single element slices become scalars,
//     longer slices become lists.
//
// Any other source returns an error wrapping [ErrInvalidArgument].
func From(src any, opts *Options) (*Pairs, error) {
	switch v := src.(type) {
	case nil:
		return New(opts), nil
	case string:
		return Parse(v, opts), nil
	case []byte:
		return Parse(v, opts), nil
	case *Pairs:
		return New(opts).Merge(v), nil
	case map[string]Value:
		return FromMap(v, opts), nil
	case map[string]string:
		p := New(opts)
		for _, k := range slices.Sorted(maps.Keys(v)) {
			p.put(k, Scalar(v[k]))
		}
		return p, nil
	case map[string][]string:
		return fromMultiMap(v, opts), nil
	case url.Values:
		return fromMultiMap(v, opts), nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unsupported pairs source %T", src))
	}
}

func fromMultiMap(m map[string][]string, opts *Options) *Pairs {
	p := New(opts)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if vs := m[k]; len(vs) == 1 {
			p.put(k, Scalar(vs[0]))
		} else {
			p.put(k, List(vs...))
		}
	}
	return p
}

// Options returns a copy of options the pairs were created with.
func (p *Pairs) Options() Options {
	if p == nil {
		return Options{}
	}
	return p.opts
}

// SetEncoder replaces the encoder used on render.
// Nil resets it to the default one.
func (p *Pairs) SetEncoder(enc Encoder) *Pairs {
	p.opts.Encoder = enc
	return p
}

// Len returns the number of distinct keys.
func (p *Pairs) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Has reports whether the key is present.
func (p *Pairs) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.vals[key]
	return ok
}

// Get returns the value of the key and a flag indicating whether the key is present.
// Missing keys return the zero [Value].
func (p *Pairs) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.vals[key]
	return v, ok
}

// Set sets the key to a copy of val.
// An existing key keeps its position, a new key is added to the end.
func (p *Pairs) Set(key string, val Value) *Pairs {
	p.put(key, val.Clone())
	return p
}

func (p *Pairs) put(key string, val Value) {
	if p.vals == nil {
		p.vals = make(map[string]Value)
	}
	if _, ok := p.vals[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = val
}

// push appends s to the list under the key, replacing a scalar value.
func (p *Pairs) push(key, s string) {
	if v, ok := p.vals[key]; ok && v.isList {
		v.vals = append(v.vals, s)
		p.vals[key] = v
		return
	}
	p.put(key, List(s))
}

// Append appends vs to the value of the key turning it into a list.
// An existing scalar value becomes the first element of the list.
func (p *Pairs) Append(key string, vs ...string) *Pairs {
	var cur []string
	if v, ok := p.vals[key]; ok {
		cur = v.Values()
	}
	p.put(key, Value{vals: slices.Concat(cur, vs), isList: true})
	return p
}

// Remove removes the key. It is a no-op for missing keys.
func (p *Pairs) Remove(key string) *Pairs {
	if _, ok := p.vals[key]; !ok {
		return p
	}
	delete(p.vals, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
	return p
}

// Clear removes all the keys.
func (p *Pairs) Clear() *Pairs {
	p.keys = nil
	clear(p.vals)
	return p
}

// Merge copies all the pairs from other overwriting values of existing keys.
func (p *Pairs) Merge(other *Pairs) *Pairs {
	for k, v := range other.All() {
		p.Set(k, v)
	}
	return p
}

// MergeMap copies all the pairs from m in sorted key order overwriting values of existing keys.
func (p *Pairs) MergeMap(m map[string]Value) *Pairs {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		p.Set(k, m[k])
	}
	return p
}

// All returns an iterator over the pairs in insertion order.
// The pairs may be modified during the iteration.
func (p *Pairs) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if p == nil {
			return
		}
		for _, k := range slices.Clone(p.keys) {
			v, ok := p.vals[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in insertion order.
func (p *Pairs) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range p.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the pairs.
func (p *Pairs) Clone() *Pairs {
	if p == nil {
		return nil
	}
	p2 := &Pairs{
		keys: slices.Clone(p.keys),
		opts: p.opts,
	}
	if p.vals != nil {
		p2.vals = make(map[string]Value, len(p.vals))
		for k, v := range p.vals {
			p2.vals[k] = v.Clone()
		}
	}
	return p2
}

var valueCmp = cmp.Comparer(func(v1, v2 Value) bool { return v1.Equal(v2) })

// Equal reports whether val is [Pairs] or *[Pairs] with the same keys and values.
// The order of keys is not significant.
func (p *Pairs) Equal(val any) bool {
	var other *Pairs
	switch v := val.(type) {
	case Pairs:
		other = &v
	case *Pairs:
		other = v
	default:
		return false
	}

	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return cmp.Equal(p.vals, other.vals, valueCmp, cmpopts.EquateEmpty())
}

// RenderTo writes the pairs to w.
// Nothing is written for empty pairs.
func (p *Pairs) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if p.Len() == 0 {
		return 0, nil
	}

	enc := p.opts.encoder()
	assign := p.opts.AssignIfEmpty

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	var tokens int
	writeToken := func(key, val string) {
		switch {
		case tokens > 0:
			cw.WriteByte('&') //nolint:errcheck
		case p.opts.Prefix != 0:
			cw.WriteByte(p.opts.Prefix) //nolint:errcheck
		}
		cw.WriteString(key) //nolint:errcheck
		if val != "" || assign {
			cw.WriteByte('=')   //nolint:errcheck
			cw.WriteString(val) //nolint:errcheck
		}
		tokens++
	}

	for _, k := range p.keys {
		v := p.vals[k]
		if v.isList && len(v.vals) == 0 {
			continue
		}
		ek := enc.Encode(k, true)
		if !v.isList {
			writeToken(ek, enc.Encode(v.String(), false))
			continue
		}
		for _, e := range v.vals {
			writeToken(ek+"[]", enc.Encode(e, false))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the pairs.
func (p *Pairs) Render(opts *RenderOptions) string {
	if p == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the pairs.
func (p *Pairs) String() string {
	return p.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the pairs.
func (p *Pairs) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			p.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		type hideMethods Pairs
		type Pairs hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Pairs)(p))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (p *Pairs) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Options of the receiver are kept.
func (p *Pairs) UnmarshalText(text []byte) error {
	*p = *Parse(text, &p.opts)
	return nil
}
