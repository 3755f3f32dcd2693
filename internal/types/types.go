// Package types contains interfaces shared by the pairs and uri packages.
package types

import "io"

// Renderer is implemented by values that render themselves to a string or a writer.
type Renderer interface {
	// Render renders the value to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the value to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
// Nil options are equal to zero options.
type RenderOptions struct {
	// Redact replaces credentials with a placeholder,
	// used when the rendered value goes to logs.
	Redact bool `json:"redact,omitempty"`
}

// IsRedact reports whether credentials should be hidden.
func (o *RenderOptions) IsRedact() bool { return o != nil && o.Redact }

type ValidFlag interface {
	IsValid() bool
}

// IsValid returns true if the value has method `IsValid() bool` and it returns true.
func IsValid(v any) bool {
	vv, ok := v.(ValidFlag)
	return ok && vv.IsValid()
}

type Equalable interface {
	Equal(val any) bool
}

type Cloneable[T any] interface {
	Clone() T
}

// Clone clones the value if it has method `Clone() T`, otherwise returns a zero value.
func Clone[T any](v any) T {
	if v1, ok := v.(Cloneable[T]); ok {
		return v1.Clone()
	}
	var zero T
	return zero
}
