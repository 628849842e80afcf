package usecase

import (
	"testing"
	"time"
)

func newClockedTracker(ttl time.Duration) (*ChoiceTracker, *time.Time) {
	current := time.Date(2016, 3, 1, 12, 0, 0, 0, time.UTC)
	t := NewChoiceTracker(ttl)
	t.now = func() time.Time { return current }
	return t, &current
}

func TestResolve_BeforeAnyOffer(t *testing.T) {
	tracker, _ := newClockedTracker(30 * time.Second)

	if _, st := tracker.Resolve(1); st != ChoiceNone {
		t.Errorf("expected ChoiceNone, got %v", st)
	}
}

func TestResolve_Expired(t *testing.T) {
	tracker, clock := newClockedTracker(30 * time.Second)
	tracker.Offer([]string{"java.awt.List", "java.util.List"})

	*clock = clock.Add(31 * time.Second)
	if _, st := tracker.Resolve(1); st != ChoiceExpired {
		t.Errorf("expected ChoiceExpired, got %v", st)
	}
}

func TestResolve_WithinTTL(t *testing.T) {
	tracker, clock := newClockedTracker(30 * time.Second)
	tracker.Offer([]string{"java.awt.List", "java.util.List"})

	*clock = clock.Add(29 * time.Second)
	text, st := tracker.Resolve(2)
	if st != ChoiceOK {
		t.Fatalf("expected ChoiceOK, got %v", st)
	}
	if text != "java.util.List" {
		t.Errorf("expected java.util.List, got %q", text)
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	tracker, _ := newClockedTracker(30 * time.Second)
	tracker.Offer([]string{"a", "b"})

	if _, st := tracker.Resolve(0); st != ChoiceInvalid {
		t.Errorf("expected ChoiceInvalid for 0, got %v", st)
	}
	if _, st := tracker.Resolve(3); st != ChoiceInvalid {
		t.Errorf("expected ChoiceInvalid for 3, got %v", st)
	}
}

func TestResolve_InvalidPickRefreshesTimer(t *testing.T) {
	tracker, clock := newClockedTracker(30 * time.Second)
	tracker.Offer([]string{"a"})

	*clock = clock.Add(25 * time.Second)
	if _, st := tracker.Resolve(99); st != ChoiceInvalid {
		t.Fatalf("expected ChoiceInvalid, got %v", st)
	}

	// 25s + 20s past the offer, but only 20s past the invalid pick.
	*clock = clock.Add(20 * time.Second)
	if _, st := tracker.Resolve(1); st != ChoiceOK {
		t.Errorf("expected the invalid pick to have refreshed the timer, got %v", st)
	}
}

func TestOffer_ReplacesPreviousList(t *testing.T) {
	tracker, _ := newClockedTracker(30 * time.Second)
	tracker.Offer([]string{"old"})
	tracker.Offer([]string{"new"})

	text, st := tracker.Resolve(1)
	if st != ChoiceOK || text != "new" {
		t.Errorf("expected the newest list to win, got %q (%v)", text, st)
	}
}
