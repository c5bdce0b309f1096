package settings

import "time"

// PauseAfterSave is how long a save outcome stays visible before the page
// falls back to its normal state.
const PauseAfterSave = 3000 * time.Millisecond

// IsRecent reports whether ts lies strictly inside the window ending at now.
// A zero timestamp is never recent.
func IsRecent(ts, now time.Time, window time.Duration) bool {
	if ts.IsZero() {
		return false
	}
	return ts.After(now.Add(-window))
}
