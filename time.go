package uuidprobe

import "time"

// Clock supplies the analyzer's notion of "now". Production code passes
// time.Now; tests pin a fixed instant so version-1 verdicts stay
// reproducible near the window boundary.
type Clock func() time.Time

// The UUID timestamp counts 100-nanosecond intervals since the adoption of
// the Gregorian calendar, 1582-10-15T00:00:00Z, per RFC 4122.
const (
	ticksPerSecond = 10_000_000 // 100ns intervals per second
	// futureSlack tolerates clock skew between generator and analyzer.
	futureSlack = time.Hour
)

var gregorianEpoch = time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)

// Time maps the 60-bit timestamp to a calendar instant relative to the
// Gregorian epoch. For versions other than 1 the result is coincidental:
// the bits do not represent a timestamp.
func (u ParsedUUID) Time() time.Time {
	ticks := u.Timestamp()
	sec := gregorianEpoch.Unix() + int64(ticks/ticksPerSecond)
	nsec := int64(ticks%ticksPerSecond) * 100
	return time.Unix(sec, nsec).UTC()
}

// ReasonableTime reports whether t is a plausible generation instant for a
// time-based UUID: no earlier than 1990 and no later than one hour past now.
func ReasonableTime(t, now time.Time) bool {
	return t.Year() >= 1990 && t.Before(now.Add(futureSlack))
}
