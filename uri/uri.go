package uri

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/urlkit/internal/errorutil"
	"github.com/ghettovoice/urlkit/internal/grammar"
	"github.com/ghettovoice/urlkit/internal/types"
	"github.com/ghettovoice/urlkit/pairs"
)

const (
	// ErrInvalidArgument is returned when a value of unsupported type is passed.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrEmptyInput is returned when parsing an empty input.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrMalformedInput is returned when the input can not be parsed.
	ErrMalformedInput = grammar.ErrMalformedInput
)

// RenderOptions contains options for rendering URLs and their components.
type RenderOptions = types.RenderOptions

// Encoder encodes query keys and values, as well as path segments appended with [Path.AppendSegment].
type Encoder = pairs.Encoder

// Component represents a single part of [URL].
type Component interface {
	types.Renderer
	types.Equalable
	fmt.Stringer
}

var (
	_ Component = (*Scheme)(nil)
	_ Component = (*AuthInfo)(nil)
	_ Component = (*Host)(nil)
	_ Component = (*Path)(nil)
	_ Component = (*Query)(nil)
	_ Component = (*Fragment)(nil)
	_ Component = (*URL)(nil)

	_ types.ValidFlag = (*Scheme)(nil)
	_ types.ValidFlag = (*Host)(nil)
	_ types.ValidFlag = (*URL)(nil)
)
