package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/pyrun/internal/domain"
)

// RenderResult prints a run the way the result view lays it out:
// error, then output, then stderr, or a placeholder when all are empty.
func RenderResult(out io.Writer, result domain.RunResult) {
	if result.Error != "" {
		writeSection(out, "Error", result.Error)
	}
	if result.Stdout != "" {
		writeSection(out, "Output", result.Stdout)
	}
	if result.Stderr != "" {
		writeSection(out, "Stderr", result.Stderr)
	}
	if result.Empty() {
		fmt.Fprintln(out, MsgNoOutput)
	}
}

// RenderStatus prints the one-line outcome summary.
func RenderStatus(out io.Writer, result domain.RunResult) {
	if result.Failed() {
		fmt.Fprintln(out, MsgExecutionFailed)
		return
	}
	fmt.Fprintln(out, MsgExecutionComplete)
}

func writeSection(out io.Writer, title, body string) {
	fmt.Fprintf(out, "== %s ==\n", title)
	fmt.Fprint(out, body)
	if !strings.HasSuffix(body, "\n") {
		fmt.Fprintln(out)
	}
}
