package pairs_test

import (
	"fmt"
	"net/url"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urlkit/pairs"
)

type pair struct {
	Key string
	Val pairs.Value
}

func collect(p *pairs.Pairs) []pair {
	var ps []pair
	for k, v := range p.All() {
		ps = append(ps, pair{k, v})
	}
	return ps
}

var pairCmp = cmp.Comparer(func(v1, v2 pairs.Value) bool { return v1.Equal(v2) })

func TestParse(t *testing.T) {
	t.Parallel()

	query := &pairs.Options{Prefix: '?'}
	cases := []struct {
		name string
		src  string
		opts *pairs.Options
		want []pair
	}{
		{"empty", "", nil, nil},
		{"prefix only", "?", query, nil},
		{"simple", "a=1&b=2", nil, []pair{{"a", pairs.Scalar("1")}, {"b", pairs.Scalar("2")}}},
		{"with prefix", "?a=1&b=2", query, []pair{{"a", pairs.Scalar("1")}, {"b", pairs.Scalar("2")}}},
		{"prefix not configured", "?a=1", nil, []pair{{"?a", pairs.Scalar("1")}}},
		{"period key repaired", "a.b=1", nil, []pair{{"a.b", pairs.Scalar("1")}}},
		{"underscore key kept", "a_b=1", nil, []pair{{"a_b", pairs.Scalar("1")}}},
		{"space key mangled", "a%20b=c+d", nil, []pair{{"a_b", pairs.Scalar("c d")}}},
		{"leading spaces trimmed", "+a=1", nil, []pair{{"a", pairs.Scalar("1")}}},
		{"list", "x[]=1&x[]=2", nil, []pair{{"x", pairs.List("1", "2")}}},
		{"period list key repaired", "a.b[]=1&a.b[]=2", nil, []pair{{"a.b", pairs.List("1", "2")}}},
		{"repeated scalar keeps last", "a=1&a=2", nil, []pair{{"a", pairs.Scalar("2")}}},
		{"list replaces scalar", "a=1&a[]=2", nil, []pair{{"a", pairs.List("2")}}},
		{"scalar replaces list", "a[]=1&a=2", nil, []pair{{"a", pairs.Scalar("2")}}},
		{"no values", "flag&x=", nil, []pair{{"flag", pairs.Scalar("")}, {"x", pairs.Scalar("")}}},
		{"empty tokens and names", "&&=1&a=1&", nil, []pair{{"a", pairs.Scalar("1")}}},
		{"unclosed bracket", "a[b=1", nil, []pair{{"a_b", pairs.Scalar("1")}}},
		{"nested brackets literal", "a[b]=1", nil, []pair{{"a[b]", pairs.Scalar("1")}}},
		{"escaped value", "a=%26%3D%2B", nil, []pair{{"a", pairs.Scalar("&=+")}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := collect(pairs.Parse(c.src, c.opts))
			if diff := cmp.Diff(got, c.want, pairCmp); diff != "" {
				t.Errorf("pairs.Parse(%q, opts) = %+v, want %+v\ndiff (-got +want):\n%v", c.src, got, c.want, diff)
			}
		})
	}
}

func TestPairs_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ps   *pairs.Pairs
		want string
	}{
		{"nil", nil, ""},
		{"empty", pairs.New(nil), ""},
		{"empty with prefix", pairs.New(&pairs.Options{Prefix: '?'}), ""},
		{
			"scalars",
			pairs.New(nil).Set("a", pairs.Scalar("1")).Set("b", pairs.Scalar("2")),
			"a=1&b=2",
		},
		{
			"with prefix",
			pairs.New(&pairs.Options{Prefix: '?'}).Set("a", pairs.Scalar("1")),
			"?a=1",
		},
		{
			"list",
			pairs.New(nil).Set("x", pairs.List("1", "2")),
			"x[]=1&x[]=2",
		},
		{
			"empty list skipped",
			pairs.New(&pairs.Options{Prefix: '?'}).Set("x", pairs.List()),
			"",
		},
		{
			"empty list between",
			pairs.New(nil).Set("a", pairs.Scalar("1")).Set("x", pairs.List()).Set("b", pairs.Scalar("2")),
			"a=1&b=2",
		},
		{
			"empty values",
			pairs.New(nil).Set("a", pairs.Scalar("")).Set("x", pairs.List("")),
			"a&x[]",
		},
		{
			"empty values assigned",
			pairs.New(&pairs.Options{AssignIfEmpty: true}).Set("a", pairs.Scalar("")).Set("x", pairs.List("")),
			"a=&x[]=",
		},
		{
			"rfc3986 encoding",
			pairs.New(nil).Set("a b", pairs.Scalar("c&d=e /?:@,;%")),
			"a%20b=c%26d%3De%20/?:@,;%25",
		},
		{
			"form encoding",
			pairs.New(&pairs.Options{Encoder: pairs.FormEncoder}).Set("a b", pairs.Scalar("c d&")),
			"a+b=c+d%26",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.ps.String(); got != c.want {
				t.Errorf("ps.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestPairs_RoundTrip(t *testing.T) {
	t.Parallel()

	srcs := []string{
		"",
		"a=1&b=2",
		"a.b=1&a_c=2",
		"x[]=1&x[]=2&y=3",
		"flag&x=",
		"a%20b=c+d&e=%26%3D",
		"q=%D0%BF%D1%80%D0%B8%D0%B2%D0%B5%D1%82",
		"a=1&a[]=2&b[]=3&b=4",
	}

	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			p1 := pairs.Parse(src, nil)
			p2 := pairs.Parse(p1.String(), nil)
			if !p2.Equal(p1) {
				t.Errorf("pairs.Parse(%q) = %v, want %v", p1.String(), collect(p2), collect(p1))
			}
			if got, want := p2.String(), p1.String(); got != want {
				t.Errorf("re-rendered pairs = %q, want %q", got, want)
			}
		})
	}
}

func TestPairs_SetRemove(t *testing.T) {
	t.Parallel()

	p := pairs.New(nil).
		Set("a", pairs.Scalar("1")).
		Set("b", pairs.Scalar("2")).
		Set("c", pairs.Scalar("3"))

	p.Set("a", pairs.List("x", "y"))
	if got, want := slices.Collect(p.Keys()), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("keys after Set(existing) = %q, want %q", got, want)
	}

	p.Remove("b").Remove("missing")
	if got, want := slices.Collect(p.Keys()), []string{"a", "c"}; !slices.Equal(got, want) {
		t.Errorf("keys after Remove() = %q, want %q", got, want)
	}
	if p.Has("b") {
		t.Error("p.Has(\"b\") = true, want false")
	}

	p.Set("b", pairs.Scalar("4"))
	if got, want := p.String(), "a[]=x&a[]=y&c=3&b=4"; got != want {
		t.Errorf("p.String() = %q, want %q", got, want)
	}

	p.Append("c", "5").Append("d", "6")
	if got, want := p.String(), "a[]=x&a[]=y&c[]=3&c[]=5&b=4&d[]=6"; got != want {
		t.Errorf("p.String() after Append() = %q, want %q", got, want)
	}

	p.Clear()
	if got := p.Len(); got != 0 {
		t.Errorf("p.Len() after Clear() = %d, want 0", got)
	}
	if got := p.String(); got != "" {
		t.Errorf("p.String() after Clear() = %q, want \"\"", got)
	}
}

func TestPairs_Get(t *testing.T) {
	t.Parallel()

	p := pairs.Parse("a=1&x[]=2", nil)
	if v, ok := p.Get("a"); !ok || !v.Equal(pairs.Scalar("1")) {
		t.Errorf("p.Get(\"a\") = (%v, %v), want (1, true)", v, ok)
	}
	if v, ok := p.Get("x"); !ok || !v.Equal(pairs.List("2")) {
		t.Errorf("p.Get(\"x\") = (%v, %v), want ([2], true)", v, ok)
	}
	if v, ok := p.Get("missing"); ok || !v.Equal(pairs.Value{}) {
		t.Errorf("p.Get(\"missing\") = (%v, %v), want (, false)", v, ok)
	}

	var nilPairs *pairs.Pairs
	if _, ok := nilPairs.Get("a"); ok {
		t.Error("nil.Get(\"a\") ok = true, want false")
	}
}

func TestPairs_Merge(t *testing.T) {
	t.Parallel()

	p := pairs.New(nil).Set("a", pairs.Scalar("0")).Set("c", pairs.Scalar("3"))
	other := pairs.New(nil).Set("a", pairs.Scalar("1")).Set("b", pairs.List("2"))
	p.Merge(other)

	want := []pair{{"a", pairs.Scalar("1")}, {"c", pairs.Scalar("3")}, {"b", pairs.List("2")}}
	if diff := cmp.Diff(collect(p), want, pairCmp); diff != "" {
		t.Errorf("p.Merge(other) = %+v, want %+v\ndiff (-got +want):\n%v", collect(p), want, diff)
	}

	p.Append("b", "3")
	if v, _ := other.Get("b"); !v.Equal(pairs.List("2")) {
		t.Errorf("merged pairs share values with source: other[b] = %v, want [2]", v)
	}

	p.MergeMap(map[string]pairs.Value{"z": pairs.Scalar("26"), "y": pairs.Scalar("25")})
	if got, want := slices.Collect(p.Keys()), []string{"a", "c", "b", "y", "z"}; !slices.Equal(got, want) {
		t.Errorf("keys after MergeMap() = %q, want %q", got, want)
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		src     any
		want    []pair
		wantErr error
	}{
		{"nil", nil, nil, nil},
		{"string", "a=1&b[]=2", []pair{{"a", pairs.Scalar("1")}, {"b", pairs.List("2")}}, nil},
		{"bytes", []byte("a=1"), []pair{{"a", pairs.Scalar("1")}}, nil},
		{"pairs", pairs.Parse("b=2&a=1", nil), []pair{{"b", pairs.Scalar("2")}, {"a", pairs.Scalar("1")}}, nil},
		{
			"value map",
			map[string]pairs.Value{"b": pairs.List("1", "2"), "a": pairs.Scalar("x")},
			[]pair{{"a", pairs.Scalar("x")}, {"b", pairs.List("1", "2")}},
			nil,
		},
		{
			"string map",
			map[string]string{"b": "2", "a": "1"},
			[]pair{{"a", pairs.Scalar("1")}, {"b", pairs.Scalar("2")}},
			nil,
		},
		{
			"multi map",
			map[string][]string{"b": {"1", "2"}, "a": {"x"}, "c": {}},
			[]pair{{"a", pairs.Scalar("x")}, {"b", pairs.List("1", "2")}, {"c", pairs.List()}},
			nil,
		},
		{
			"url values",
			url.Values{"q": {"go"}, "tag": {"a", "b"}},
			[]pair{{"q", pairs.Scalar("go")}, {"tag", pairs.List("a", "b")}},
			nil,
		},
		{"int", 42, nil, pairs.ErrInvalidArgument},
		{"struct", struct{}{}, nil, pairs.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := pairs.From(c.src, nil)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("pairs.From(%v) error = %v, want %v\ndiff (-got +want):\n%v", c.src, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				if got != nil {
					t.Errorf("pairs.From(%v) = %v, want nil", c.src, got)
				}
				return
			}
			if diff := cmp.Diff(collect(got), c.want, pairCmp); diff != "" {
				t.Errorf("pairs.From(%v) = %+v, want %+v\ndiff (-got +want):\n%v", c.src, collect(got), c.want, diff)
			}
		})
	}
}

func TestPairs_Clone(t *testing.T) {
	t.Parallel()

	var nilPairs *pairs.Pairs
	if got := nilPairs.Clone(); got != nil {
		t.Errorf("nil.Clone() = %v, want nil", got)
	}

	p := pairs.New(&pairs.Options{Prefix: '?'}).Set("a", pairs.List("1")).Set("b", pairs.Scalar("2"))
	c := p.Clone()
	if !c.Equal(p) {
		t.Fatalf("p.Clone() = %v, want %v", c, p)
	}
	if got, want := c.String(), p.String(); got != want {
		t.Errorf("p.Clone().String() = %q, want %q", got, want)
	}

	c.Append("a", "2").Remove("b").Set("c", pairs.Scalar("3"))
	if got, want := p.String(), "?a[]=1&b=2"; got != want {
		t.Errorf("source changed after clone modification: p.String() = %q, want %q", got, want)
	}
}

func TestPairs_Equal(t *testing.T) {
	t.Parallel()

	p := pairs.Parse("a=1&b=2", nil)
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"same order", pairs.Parse("a=1&b=2", nil), true},
		{"other order", pairs.Parse("b=2&a=1", nil), true},
		{"value", *pairs.Parse("b=2&a=1", nil), true},
		{"other options", pairs.Parse("?a=1&b=2", &pairs.Options{Prefix: '?'}), true},
		{"other value", pairs.Parse("a=1&b=3", nil), false},
		{"list value", pairs.Parse("a=1&b[]=2", nil), false},
		{"less keys", pairs.Parse("a=1", nil), false},
		{"nil", (*pairs.Pairs)(nil), false},
		{"string", "a=1&b=2", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := p.Equal(c.val); got != c.want {
				t.Errorf("p.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}

	if !pairs.New(nil).Equal(pairs.Parse("", nil)) {
		t.Error("empty pairs are not equal")
	}
}

func TestPairs_All(t *testing.T) {
	t.Parallel()

	p := pairs.Parse("a=1&b=2&c=3", nil)
	var seen []string
	for k := range p.All() {
		seen = append(seen, k)
		if k == "a" {
			p.Remove("b")
		}
	}
	if want := []string{"a", "c"}; !slices.Equal(seen, want) {
		t.Errorf("iterated keys = %q, want %q", seen, want)
	}

	seen = seen[:0]
	for k := range p.Keys() {
		seen = append(seen, k)
		break
	}
	if want := []string{"a"}; !slices.Equal(seen, want) {
		t.Errorf("iterated keys with break = %q, want %q", seen, want)
	}
}

func TestPairs_Format(t *testing.T) {
	t.Parallel()

	p := pairs.Parse("?a=1&b=x+y", &pairs.Options{Prefix: '?'})
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "?a=1&b=x%20y"},
		{"%+s", "?a=1&b=x%20y"},
		{"%q", `"?a=1&b=x%20y"`},
	}

	for _, c := range cases {
		if got := fmt.Sprintf(c.format, p); got != c.want {
			t.Errorf("fmt.Sprintf(%q, p) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestPairs_Text(t *testing.T) {
	t.Parallel()

	p := pairs.New(&pairs.Options{Prefix: '?', AssignIfEmpty: true})
	if err := p.UnmarshalText([]byte("?a&b[]=1")); err != nil {
		t.Fatalf("p.UnmarshalText() error = %v, want nil", err)
	}
	if got := p.Options(); got.Prefix != '?' || !got.AssignIfEmpty {
		t.Errorf("p.Options() = %+v, want options kept", got)
	}

	txt, err := p.MarshalText()
	if err != nil {
		t.Fatalf("p.MarshalText() error = %v, want nil", err)
	}
	if got, want := string(txt), "?a=&b[]=1"; got != want {
		t.Errorf("p.MarshalText() = %q, want %q", got, want)
	}
}
