package cliutil

import (
	"bytes"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "converted %d of %d", 3, 4)
	if got := buf.String(); got != "converted 3 of 4" {
		t.Errorf("Writef() = %q, want %q", got, "converted 3 of 4")
	}
}

func TestWriteln(t *testing.T) {
	var buf bytes.Buffer
	Writeln(&buf, "hello-world")
	if got := buf.String(); got != "hello-world\n" {
		t.Errorf("Writeln() = %q, want %q", got, "hello-world\n")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (e errorWriter) Write(p []byte) (n int, err error) {
	return 0, &writeError{}
}

type writeError struct{}

func (e *writeError) Error() string {
	return "simulated write error"
}

func TestWritef_WriteError(t *testing.T) {
	// Verifies that a failing writer is logged to stderr rather than panicking
	var ew errorWriter
	Writef(ew, "this will fail")
	Writeln(ew, "this too")
}
