package util

import "time"

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// LoadLocation resolves an IANA zone name, falling back to the given fixed offset
// when the host has no tzdata.
func LoadLocation(name string, fallbackOffset time.Duration) *time.Location {
	if name == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone(name, int(fallbackOffset.Seconds()))
}
