package output

import (
	"fmt"
	"io"
)

// Printer writes the user-facing lines for a run. Informational lines are
// suppressed unless verbose; failures and the final summary always print.
// It implements linker.Reporter.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// NewPrinter creates a Printer writing to out and errOut.
func NewPrinter(out, errOut io.Writer, verbose bool) *Printer {
	return &Printer{out: out, errOut: errOut, verbose: verbose}
}

// CreatedDir reports a directory created under the target root.
func (p *Printer) CreatedDir(path string) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.out, StyleInfo.Render(fmt.Sprintf("created directory %s", path)))
}

// Linked reports a symlink created or refreshed at target.
func (p *Printer) Linked(target, source string) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.out, StyleSuccess.Render(fmt.Sprintf("linked %s -> %s", target, source)))
}

// WouldLink reports the link a dry run would have created.
func (p *Printer) WouldLink(target, source string) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.out, StyleInfo.Render(fmt.Sprintf("would link %s -> %s", target, source)))
}

// Failed reports a per-entry failure. Always printed.
func (p *Printer) Failed(target, source string, err error) {
	fmt.Fprintln(p.errOut, StyleError.Render(fmt.Sprintf("failed to link %s -> %s: %v", target, source, err)))
}

// Summary prints the final run summary block. Always printed.
func (p *Printer) Summary(dryRun bool, processed, linked, failed int) {
	header := "Run complete"
	if dryRun {
		header = "Dry run complete"
	}
	fmt.Fprintln(p.out, StyleHeader.Render(header))
	fmt.Fprintf(p.out, "  Total processed: %d\n", processed)
	fmt.Fprintf(p.out, "  Linked: %d\n", linked)
	if failed > 0 {
		fmt.Fprintln(p.out, StyleError.Render(fmt.Sprintf("  Failed: %d", failed)))
	} else {
		fmt.Fprintf(p.out, "  Failed: %d\n", failed)
	}
}
