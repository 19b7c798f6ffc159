package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIError_Error(t *testing.T) {
	e := &CLIError{Summary: "not logged in", ExitCode: ExitAuthError}
	if e.Error() != "not logged in" {
		t.Errorf("Error() = %q, want summary", e.Error())
	}
}

func TestFormatError_AllFields(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithWriters(&bytes.Buffer{}, &stderr, false)

	p.FormatError(&CLIError{
		Summary:    "not logged in",
		Detail:     "no token found",
		Suggestion: "Run 'geekctl login' to start a session",
		ExitCode:   ExitAuthError,
	})

	out := stderr.String()
	for _, want := range []string{"not logged in", "Cause: no token found", "Suggestion: Run 'geekctl login'"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %q", want, out)
		}
	}
}

func TestFormatError_SummaryOnly(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithWriters(&bytes.Buffer{}, &stderr, false)

	p.FormatError(&CLIError{Summary: "request failed"})

	out := stderr.String()
	if strings.Contains(out, "Cause:") || strings.Contains(out, "Suggestion:") {
		t.Errorf("empty fields should not be printed, got: %q", out)
	}
}
