package langserver

import (
	"testing"

	"github.com/dhamidi/parsekit/examples/jsexpr"
)

func checkJSExpr() CheckFunc {
	parser := jsexpr.NewParser()
	parser.SetLogSink(nil)
	return func(input []byte) error {
		_, err := parser.Parse(input)
		return err
	}
}

func TestDiagnoseValidDocument(t *testing.T) {
	server := NewServer("test", checkJSExpr())

	if got := server.Diagnose([]byte("a+b-10>90?80:f+8;")); got != nil {
		t.Errorf("Diagnose(valid) = %v, want nil", got)
	}
}

func TestDiagnoseParseError(t *testing.T) {
	server := NewServer("test", checkJSExpr())

	diagnostics := server.Diagnose([]byte("a+b-*8;"))
	if len(diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diagnostics))
	}
	d := diagnostics[0]
	// The deepest failure is at offset 4 (line 1, column 5); LSP
	// positions are zero-based.
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 4 {
		t.Errorf("range starts at %d:%d, want 0:4", d.Range.Start.Line, d.Range.Start.Character)
	}
	if d.Message == "" {
		t.Error("empty diagnostic message")
	}
}

func TestDiagnoseTokenizationError(t *testing.T) {
	server := NewServer("test", checkJSExpr())

	diagnostics := server.Diagnose([]byte("a+#;"))
	if len(diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diagnostics))
	}
	if got := diagnostics[0].Range.Start.Character; got != 2 {
		t.Errorf("range starts at character %d, want 2", got)
	}
}
