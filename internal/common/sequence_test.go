package common

import "testing"

func TestSequenceMonotonic(t *testing.T) {
	seq := NewSequence(1)
	for want := 1; want <= 5; want++ {
		if got := seq.Next(); got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestSequenceStartsAtGivenValue(t *testing.T) {
	seq := NewSequence(10)
	if got := seq.Peek(); got != 10 {
		t.Fatalf("expected peek 10, got %d", got)
	}
	if got := seq.Next(); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := seq.Peek(); got != 11 {
		t.Fatalf("expected peek 11 after next, got %d", got)
	}
}

func TestSequenceClampsStart(t *testing.T) {
	seq := NewSequence(0)
	if got := seq.Next(); got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
}
