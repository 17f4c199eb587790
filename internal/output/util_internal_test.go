//go:build unit

package output

import "testing"

func TestIntToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
}

func TestBoolToString(t *testing.T) {
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
	if got, want := boolToString(false), "false"; got != want {
		t.Errorf("boolToString(false) = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Responsabilidad Civil", 30); got != "Responsabilidad Civil" {
		t.Errorf("short names are kept, got %q", got)
	}
	if got := truncate("Daños Materiales", 6); got != "Daños…" {
		t.Errorf("truncate = %q", got)
	}
}
