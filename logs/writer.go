package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/tbas/cmds"
)

type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

func init() {
	cmds.Describe("-log-file", "append logs to this file instead of stderr")
}

// Writer keeps logs off stderr when -log-file is set, so a console or modem
// attached to stdio is not interleaved with log lines.
func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v, logging to stderr\n", err)
		return os.Stderr
	}
	return f
}
