package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"yes uppercase", "Y\n", false, true},
		{"no", "n\n", false, false},
		{"no word", "no\n", false, false},
		{"empty takes default no", "\n", false, false},
		{"empty takes default yes", "\n", true, true},
		{"garbage is no", "maybe\n", false, false},
		{"whitespace around answer", "  y  \n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Proceed?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfirm_PromptSuffix(t *testing.T) {
	var out bytes.Buffer
	if _, err := Confirm(strings.NewReader("n\n"), &out, "Overwrite existing skills?", false); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if !strings.Contains(out.String(), "Overwrite existing skills? [y/N]") {
		t.Errorf("prompt = %q, want [y/N] suffix", out.String())
	}

	out.Reset()
	if _, err := Confirm(strings.NewReader("\n"), &out, "Proceed?", true); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if !strings.Contains(out.String(), "[Y/n]") {
		t.Errorf("prompt = %q, want [Y/n] suffix", out.String())
	}
}

func TestConfirm_EOFWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	got, err := Confirm(strings.NewReader("y"), &out, "Proceed?", false)
	if err != nil {
		t.Fatalf("Confirm failed on EOF-terminated answer: %v", err)
	}
	if !got {
		t.Error("Confirm should accept an answer without a trailing newline")
	}
}

func TestIsInteractive(t *testing.T) {
	// Injected readers are always treated as interactive
	if !IsInteractive(strings.NewReader("y\n")) {
		t.Error("strings.Reader should be interactive")
	}
	if !IsInteractive(&bytes.Buffer{}) {
		t.Error("bytes.Buffer should be interactive")
	}

	// A plain file is not a terminal
	path := filepath.Join(t.TempDir(), "stdin.txt")
	if err := os.WriteFile(path, []byte("y\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	defer f.Close()

	if IsInteractive(f) {
		t.Error("a regular file should not be interactive")
	}
}
