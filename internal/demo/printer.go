// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"
	"io"
)

// printer writes formatted lines and remembers the first write error, so
// demos can print freely and report failure once at the end.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// section prints a "=== title ===" banner.
func (p *printer) section(title string) {
	p.printf("=== %s ===\n", title)
}
