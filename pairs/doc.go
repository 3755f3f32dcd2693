// Package pairs implements an ordered key-value container with a form-like string codec.
//
// It is used as the query component of [github.com/ghettovoice/urlkit/uri.URL],
// but works for any '&' separated list of "key=value" pairs.
//
// # Parsing
//
// [Parse] decodes a string in the form "key=value&key2=value2".
// Keys are decoded the way the web form decoders do it, so "a b" and "a.b" collapse into "a_b".
// Whenever the original raw key is known to contain periods, the key is repaired:
//
//	p := pairs.Parse("a.b=1&x[]=1&x[]=2", nil)
//	p.Get("a.b") // "1"
//	p.Get("x")   // ["1", "2"]
//
// Keys with "[]" suffix accumulate their values into a list.
//
// # Rendering
//
// Pairs are rendered back in insertion order, every key and value is passed through
// the configured [Encoder]. List values are rendered as repeated "key[]=value" tokens.
// Empty values are rendered without '=' unless [Options.AssignIfEmpty] is set.
//
// # Thread Safety
//
// Pairs are not safe for concurrent modification.
package pairs
