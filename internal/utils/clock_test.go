package utils

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	if got.Before(before) {
		t.Errorf("RealClock went backwards: %v < %v", got, before)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("expected %v, got %v", start, c.Now())
	}

	c.Advance(90 * time.Second)
	if want := start.Add(90 * time.Second); !c.Now().Equal(want) {
		t.Errorf("expected %v after Advance, got %v", want, c.Now())
	}

	c.Advance(-time.Minute)
	if want := start.Add(30 * time.Second); !c.Now().Equal(want) {
		t.Errorf("expected %v after negative Advance, got %v", want, c.Now())
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Errorf("expected %v after Set, got %v", start, c.Now())
	}
}
