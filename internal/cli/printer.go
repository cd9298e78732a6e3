package cli

import (
	"fmt"
	"io"
)

// printer keeps the first write error so callers can check once per step.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		p.err = fmt.Errorf("write output: %w", err)
	}
}

func (p *printer) println(s string) {
	p.print(s + "\n")
}

func (p *printer) printf(format string, args ...any) {
	p.print(fmt.Sprintf(format, args...))
}
