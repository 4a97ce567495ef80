package format

import "testing"

func TestIterationCountAddsSeparators(t *testing.T) {
	got := IterationCount(12482901)
	want := "12,482,901"
	if got != want {
		t.Fatalf("IterationCount(12482901) = %q, want %q", got, want)
	}
}

func TestIterationCountSmall(t *testing.T) {
	if got := IterationCount(42); got != "42" {
		t.Fatalf("IterationCount(42) = %q, want %q", got, "42")
	}
}

func TestAttemptsMatchesIterationCountFormat(t *testing.T) {
	if got, want := Attempts(1000), IterationCount(1000); got != want {
		t.Fatalf("Attempts(1000) = %q, want %q", got, want)
	}
}
