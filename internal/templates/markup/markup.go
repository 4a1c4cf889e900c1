// Package markup is a small HTML writer used by the Go-authored templ
// components. It records the first write error and turns later writes into
// no-ops, so components can check Err once at the end.
package markup

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Raw writes trusted markup as-is.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Rawf formats trusted markup. Arguments are not escaped.
func (w *Writer) Rawf(format string, args ...any) {
	w.Raw(fmt.Sprintf(format, args...))
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Component renders a nested component into the same stream.
func (w *Writer) Component(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

func (w *Writer) Err() error {
	return w.err
}

// Attr escapes s for use inside a double-quoted attribute.
func Attr(s string) string {
	return templ.EscapeString(s)
}

// URL sanitizes href (rejecting script URLs) and escapes it for an attribute.
func URL(href string) string {
	return templ.EscapeString(string(templ.URL(href)))
}

// Component adapts a write function into a templ.Component.
func Component(fn func(w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := New(ctx, out)
		fn(w)
		return w.Err()
	})
}
