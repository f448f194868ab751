package misc

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"
)

func TestWriteThenReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "settings.json")
	contents := []byte(`{"Width": 640}`)

	written, err := WriteFile(name, contents)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if written != len(contents) {
		t.Errorf("WriteFile() wrote %d bytes, want %d", written, len(contents))
	}

	got, err := ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, contents) {
		t.Errorf("ReadFile() = %q, want %q", got, contents)
	}
}

func TestFileErrors(t *testing.T) {
	if _, err := ReadFile(""); err == nil {
		t.Error("ReadFile(\"\") error = nil")
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile() of a missing file error = nil")
	}
	if _, err := WriteFile("", nil); err == nil {
		t.Error("WriteFile(\"\") error = nil")
	}
}

func TestLerpFloat64(t *testing.T) {
	tests := []struct {
		v1, v2, fraction, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{-1, 1, 0.5, 0},
		{1, 3, 2, 5},
	}
	for _, tt := range tests {
		if got := LerpFloat64(tt.v1, tt.v2, tt.fraction); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LerpFloat64(%g, %g, %g) = %g, want %g", tt.v1, tt.v2, tt.fraction, got, tt.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if Warning.String() != "Warning" {
		t.Errorf("Warning.String() = %q", Warning.String())
	}
}
