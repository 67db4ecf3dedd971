package util

import "time"

// NowUTC returns the current time in UTC truncated to microseconds, the
// precision Postgres keeps for timestamptz, so every repository hands back
// the same value it stored.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
