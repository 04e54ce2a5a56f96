// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/uri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *uri.URI) slog.Value {
		if u == nil {
			return slog.StringValue("<nil>")
		}
		attrs := make([]slog.Attr, 0, len(uri.Components())+1)
		for _, c := range uri.Components() {
			if v, ok := u.Get(c); ok {
				attrs = append(attrs, slog.String(c.String(), v))
			}
		}
		if v, ok := u.Get(uri.Built); ok {
			attrs = append(attrs, slog.String(uri.Built.String(), v))
		}
		return slog.GroupValue(attrs...)
	}),
)

// NewDefault returns a console logger writing to w.
func NewDefault(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a developer logger writing to w.
func NewDev(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a default logger.
var Def = NewDefault(os.Stderr, slog.LevelDebug)

// Dev is a developer logger.
var Dev = NewDev(os.Stderr, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// Kind names a logger flavour.
type Kind string

const (
	KindDefault Kind = "default"
	KindDev     Kind = "dev"
	KindNoop    Kind = "noop"
)

// New returns a logger of the given kind writing to w.
// An empty kind is the same as [KindDefault].
func New(kind Kind, w io.Writer, lvl slog.Leveler) (*slog.Logger, error) {
	switch kind {
	case KindDefault, "":
		return NewDefault(w, lvl), nil
	case KindDev:
		return NewDev(w, lvl), nil
	case KindNoop:
		return Noop, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown logger %q", kind))
	}
}
