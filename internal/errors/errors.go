// Package errors implements the diagnostic sink shared by all compiler
// phases. Errors are collected and counted instead of being raised out
// of the phase that detects them; later phases consult the count to
// decide whether to run at all.
package errors

import (
	"fmt"
	"io"
)

// Diagnostic is a single line-tagged compiler error.
type Diagnostic struct {
	Message string
	Line    int
}

// String returns the diagnostic formatted as "line: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s", d.Line, d.Message)
}

// Reporter collects diagnostics in the order they are reported and
// mirrors each one to an output stream. A nil writer disables the
// mirroring, which is what the tests use.
type Reporter struct {
	out         io.Writer
	diagnostics []Diagnostic
}

// NewReporter creates a reporter writing diagnostics to out.
// Pass nil to collect silently.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report records a diagnostic at the given source line.
func (r *Reporter) Report(line int, format string, args ...any) {
	d := Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
	r.diagnostics = append(r.diagnostics, d)
	if r.out != nil {
		fmt.Fprintln(r.out, d.String())
	}
}

// Count returns the number of diagnostics reported so far.
func (r *Reporter) Count() int {
	return len(r.diagnostics)
}

// Diagnostics returns the collected diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}
