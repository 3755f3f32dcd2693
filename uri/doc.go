// Package uri implements a mutable structured URL.
//
// A [URL] is an aggregate of six optional components: [Scheme], [AuthInfo], [Host],
// [Path], [Query] and [Fragment]. Each component can be read, replaced or cleared
// independently and the URL string is assembled from them on demand:
//
//	u, err := uri.Parse("https://example.com/docs?page=1")
//	if err != nil {
//	    return err
//	}
//	u.Query().Set("page", pairs.Scalar("2"))
//	u.Path().AppendSegment("intro")
//	fmt.Println(u) // https://example.com/docs/intro?page=2
//
// Component getters materialize an empty component on first access, so a chain like
// u.Query().Set(...) works on a URL without a query. Setters accept typed components,
// use the constructors ([NewScheme], [ParseHost], [ParseQuery], ...) to build them
// from raw strings. Passing nil clears a component.
//
// # Schemeless URLs
//
// A URL parsed from a string starting with "//" or with the scheme cleared by [URL.SetScheme]
// is schemeless: it is rendered with the leading "//" and no scheme.
// Setting a non-empty scheme turns schemeless mode off.
//
// # Encoding
//
// Query keys and values are encoded with [pairs.RFC3986Encoder] by default.
// [URL.SetEncoder] replaces the encoder of the query and of the path segments appended
// with [Path.AppendSegment].
//
// # Requests
//
// [FromRequest] reconstructs the URL of an incoming HTTP request from [RequestContext],
// see [RequestContextFromHTTP] for net/http integration.
package uri
