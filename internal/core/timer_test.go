package core

import (
	"testing"
	"time"
)

func TestFixedStepCadence(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	if !fs.ShouldStep(at(0)) {
		t.Fatal("first poll should step immediately")
	}
	steps := 0
	for ms := 16; ms <= 1000; ms += 16 {
		if fs.ShouldStep(at(ms)) {
			steps++
		}
	}
	if steps < 9 || steps > 10 {
		t.Fatalf("got %d steps in ~1s at 100ms, expected 9-10", steps)
	}
}

func TestFixedStepNoCatchUpBurst(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	fs.ShouldStep(t0)
	if !fs.ShouldStep(t0.Add(5 * time.Second)) {
		t.Fatal("expected a step after a long stall")
	}
	if fs.ShouldStep(t0.Add(5*time.Second + time.Millisecond)) {
		t.Fatal("stall should not queue extra steps")
	}
}

func TestFixedStepInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultInterval {
		t.Fatalf("Interval()=%v, expected default %v", fs.Interval(), DefaultInterval)
	}
	fs.SetInterval(time.Millisecond)
	if fs.Interval() != MinInterval {
		t.Fatalf("Interval()=%v, expected floor %v", fs.Interval(), MinInterval)
	}
	fs.SetInterval(250 * time.Millisecond)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("Interval()=%v, expected 250ms", fs.Interval())
	}
}
