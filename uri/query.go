package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urlkit/internal/constraints"
	"github.com/ghettovoice/urlkit/pairs"
)

// Query is the query component of [URL]: ordered key-value pairs rendered with the leading '?'.
// Use [NewQuery] and other constructors, the zero Query renders without the prefix.
type Query struct {
	pairs.Pairs
}

func queryOptions() *pairs.Options { return &pairs.Options{Prefix: '?'} }

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{Pairs: *pairs.New(queryOptions())}
}

// ParseQuery parses the query string s, the leading '?' is optional.
// See [pairs.Parse] for decoding rules.
func ParseQuery[T constraints.Byteseq](s T) *Query {
	return &Query{Pairs: *pairs.Parse(s, queryOptions())}
}

// QueryFromMap creates a query from m with keys in sorted order.
func QueryFromMap(m map[string]pairs.Value) *Query {
	return &Query{Pairs: *pairs.FromMap(m, queryOptions())}
}

// QueryFrom creates a query from any source supported by [pairs.From].
func QueryFrom(src any) (*Query, error) {
	p, err := pairs.From(src, queryOptions())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Query{Pairs: *p}, nil
}

// Set sets the value of key, see [pairs.Pairs.Set].
func (q *Query) Set(key string, val pairs.Value) *Query {
	q.Pairs.Set(key, val)
	return q
}

// Append appends values to key turning it into a list, see [pairs.Pairs.Append].
func (q *Query) Append(key string, vs ...string) *Query {
	q.Pairs.Append(key, vs...)
	return q
}

// Remove removes key.
func (q *Query) Remove(key string) *Query {
	q.Pairs.Remove(key)
	return q
}

// Clear removes all the pairs.
func (q *Query) Clear() *Query {
	q.Pairs.Clear()
	return q
}

// Merge copies all the pairs from other overwriting values of existing keys.
func (q *Query) Merge(other *Query) *Query {
	if other != nil {
		q.Pairs.Merge(&other.Pairs)
	}
	return q
}

// MergeMap copies all the pairs from m in sorted key order overwriting values of existing keys.
func (q *Query) MergeMap(m map[string]pairs.Value) *Query {
	q.Pairs.MergeMap(m)
	return q
}

// SetEncoder sets the encoder of keys and values.
func (q *Query) SetEncoder(enc Encoder) *Query {
	q.Pairs.SetEncoder(enc)
	return q
}

// Clone returns a deep copy of the query.
func (q *Query) Clone() *Query {
	if q == nil {
		return nil
	}
	return &Query{Pairs: *q.Pairs.Clone()}
}

// Equal reports whether val holds the same pairs regardless of their order.
// It accepts [Query], *[Query], [pairs.Pairs] and *[pairs.Pairs].
func (q *Query) Equal(val any) bool {
	var other *pairs.Pairs
	switch v := val.(type) {
	case Query:
		other = &v.Pairs
	case *Query:
		if v != nil {
			other = &v.Pairs
		}
	case pairs.Pairs:
		other = &v
	case *pairs.Pairs:
		other = v
	default:
		return false
	}

	if q == nil || other == nil {
		return q == nil && other == nil
	}
	return q.Pairs.Equal(other)
}
