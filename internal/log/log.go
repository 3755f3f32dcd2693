// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/urlkit/pairs"
	"github.com/ghettovoice/urlkit/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *uri.URL) slog.Value {
		return u.LogValue()
	}),
	slogformatter.FormatByType(func(ai *uri.AuthInfo) slog.Value {
		return slog.StringValue(ai.Render(&uri.RenderOptions{Redact: true}))
	}),
	slogformatter.FormatByType(func(p *pairs.Pairs) slog.Value {
		attrs := make([]slog.Attr, 0, p.Len())
		for k, v := range p.All() {
			if v.IsList() {
				attrs = append(attrs, slog.Any(k, v.Values()))
			} else {
				attrs = append(attrs, slog.String(k, v.String()))
			}
		}
		return slog.GroupValue(attrs...)
	}),
)

// NewConsole returns a logger writing human readable lines to w.
func NewConsole(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a developer logger writing colorized multiline records to w.
func NewDev(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }
