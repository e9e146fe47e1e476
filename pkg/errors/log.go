package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogHandler is an ErrorHandler that logs errors to Out (stderr when nil).
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives log lines. Defaults to os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a FlowError.
func (h *LogHandler) HandleError(err *FlowError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[flow error] %s [%s]", err.Op, err.Kind)
		if err.Path != "" {
			fmt.Fprintf(w, " path=%s", err.Path)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[flow error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[flow panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[flow panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

var (
	debugMu  sync.Mutex
	debugOut io.Writer = os.Stderr
)

// SetDebugOutput redirects Debugf output. Pass nil to restore stderr.
func SetDebugOutput(w io.Writer) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	debugOut = w
}

// Debugf writes a single "[flow debug]" line.
func Debugf(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()
	fmt.Fprintf(debugOut, "[flow debug] "+format+"\n", args...)
}
