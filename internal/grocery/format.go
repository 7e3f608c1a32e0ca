package grocery

import (
	"time"

	"github.com/dustin/go-humanize"
)

var expiryLayouts = []string{time.DateOnly, time.RFC3339, time.DateTime}

// ParseExpiry parses an item expiry date. The backend does not enforce a format.
func ParseExpiry(expiry string) (time.Time, bool) {
	for _, layout := range expiryLayouts {
		if t, err := time.ParseInLocation(layout, expiry, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HumanizeExpiry returns the expiry relative to now ("3 days from now"), or the
// raw value when it cannot be parsed. Items without an expiry return "".
func HumanizeExpiry(expiry string, now time.Time) string {
	if expiry == "" {
		return ""
	}
	t, ok := ParseExpiry(expiry)
	if !ok {
		return expiry
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Expired returns true if the expiry is parseable and before now.
func Expired(expiry string, now time.Time) bool {
	t, ok := ParseExpiry(expiry)
	return ok && t.Before(now)
}
