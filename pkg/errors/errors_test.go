package errors

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestFlowErrorString(t *testing.T) {
	err := &FlowError{
		Op:   "flow.Pack",
		Kind: KindContract,
		Err:  &ContractError{Op: "flow.Pack", Field: "spacing.Horizontal", Value: -4},
	}
	got := err.Error()
	want := "flow.Pack [contract]: flow.Pack: spacing.Horizontal must be non-negative, got -4"
	if got != want {
		t.Errorf("FlowError.Error() = %q, want %q", got, want)
	}
}

func TestFlowErrorWithPath(t *testing.T) {
	err := &FlowError{
		Op:   "config.LoadScene",
		Kind: KindConfig,
		Path: "scenes/tags.yaml",
		Err:  io.ErrUnexpectedEOF,
	}
	if !strings.Contains(err.Error(), "path=scenes/tags.yaml") {
		t.Errorf("error string %q should contain path", err.Error())
	}
	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected FlowError to unwrap to its cause")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindContract, "contract"},
		{KindConfig, "config"},
		{KindMeasure, "measure"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "cmd.pack"
	if got, want := err.Error(), "panic in cmd.pack: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *FlowError
	handler := &testHandler{onError: func(err *FlowError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&FlowError{Op: "test.op", Kind: KindConfig, Err: io.EOF})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{
		onError: func(*FlowError) { called = true },
		onPanic: func(*PanicError) { called = true },
	}
	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace to be captured")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback received %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&FlowError{Op: "config.Resolve", Kind: KindConfig, Err: io.EOF})
	h.HandlePanic(&PanicError{Op: "cmd.place", Value: "bad"})

	out := buf.String()
	if !strings.Contains(out, "[flow error] config.Resolve: EOF") {
		t.Errorf("expected error line, got %q", out)
	}
	if !strings.Contains(out, "[flow panic] cmd.place: bad") {
		t.Errorf("expected panic line, got %q", out)
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Verbose: true}
	h.HandleError(&FlowError{
		Op:         "config.LoadScene",
		Kind:       KindConfig,
		Path:       "scene.yaml",
		Err:        io.EOF,
		StackTrace: "main.main",
	})
	out := buf.String()
	for _, want := range []string{"[config]", "path=scene.yaml", "Stack trace:", "main.main"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output %q should contain %q", out, want)
		}
	}
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(nil)

	Debugf("rows=%d", 3)
	if got, want := buf.String(), "[flow debug] rows=3\n"; got != want {
		t.Errorf("Debugf wrote %q, want %q", got, want)
	}
}

type testHandler struct {
	onError func(*FlowError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *FlowError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
