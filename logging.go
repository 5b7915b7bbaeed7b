package main

import (
	"context"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// logHandler formats records as "<time> <level> <message> <attrs...>",
// one line per record, safe for concurrent use.
type logHandler struct {
	h   slog.Handler
	mu  *sync.Mutex
	out io.Writer
}

func newLogHandler(o io.Writer, opts *slog.HandlerOptions) *logHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &logHandler{
		out: o,
		h: slog.NewTextHandler(o, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		}),
		mu: &sync.Mutex{},
	}
}

func (self *logHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return self.h.Enabled(ctx, level)
}

func (self *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &logHandler{h: self.h.WithAttrs(attrs), out: self.out, mu: self.mu}
}

func (self *logHandler) WithGroup(name string) slog.Handler {
	return &logHandler{h: self.h.WithGroup(name), out: self.out, mu: self.mu}
}

func (self *logHandler) Handle(ctx context.Context, r slog.Record) error {
	formattedTime := r.Time.Format("2006/01/02 15:04:05")
	strs := []string{formattedTime, r.Level.String(), r.Message}

	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, a.Key+"="+a.Value.String())
		return true
	})
	strs = append(strs, "\n")

	self.mu.Lock()
	defer self.mu.Unlock()
	_, err := self.out.Write([]byte(strings.Join(strs, " ")))
	return err
}
