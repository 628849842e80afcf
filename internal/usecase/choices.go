package usecase

import "time"

// ChoiceStatus is the outcome of resolving a numbered reply.
type ChoiceStatus int

const (
	// ChoiceOK means the number selected a stored choice.
	ChoiceOK ChoiceStatus = iota
	// ChoiceNone means no choices were ever offered; the reply is ignored.
	ChoiceNone
	// ChoiceExpired means the offered list timed out; the reply is ignored.
	ChoiceExpired
	// ChoiceInvalid means the number is out of range; the user gets told.
	ChoiceInvalid
)

// ChoiceTracker holds the most recently offered numbered disambiguation
// list. There is one slot per tracker, not one per conversation: a new offer
// unconditionally replaces the previous one.
//
// The tracker is driven by the single-threaded message loop and is not
// safe for concurrent use.
type ChoiceTracker struct {
	ttl       time.Duration
	now       func() time.Time
	choices   []string
	offeredAt time.Time
}

// NewChoiceTracker creates a tracker with the given time-to-live.
func NewChoiceTracker(ttl time.Duration) *ChoiceTracker {
	return &ChoiceTracker{
		ttl: ttl,
		now: time.Now,
	}
}

// Offer stores a freshly offered choice list, replacing any prior list.
func (t *ChoiceTracker) Offer(choices []string) {
	t.choices = choices
	t.offeredAt = t.now()
}

// Resolve maps a 1-based numbered reply back to the offered choice text.
// A successful or out-of-range reply refreshes the expiry timer; an expired
// or never-offered slot does not respond at all.
func (t *ChoiceTracker) Resolve(num int) (string, ChoiceStatus) {
	if t.offeredAt.IsZero() {
		return "", ChoiceNone
	}
	if t.now().Sub(t.offeredAt) > t.ttl {
		return "", ChoiceExpired
	}

	// Reset the time-out timer before validating: an invalid pick keeps the
	// window open.
	t.offeredAt = t.now()

	index := num - 1
	if index < 0 || index >= len(t.choices) {
		return "", ChoiceInvalid
	}
	return t.choices[index], ChoiceOK
}
