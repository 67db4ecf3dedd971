// Package daylight reports sunrise and sunset for a place and day.
package daylight

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

// SunriseClock computes sunrise and sunset with the NOAA-style algorithm in
// go-sunrise. Both times are zero during polar day or polar night.
type SunriseClock struct{}

// NewSunriseClock returns a SunriseClock.
func NewSunriseClock() *SunriseClock {
	return &SunriseClock{}
}

// SunriseSunset returns the UTC sunrise and sunset for latitude and
// longitude in degrees. The day is the calendar day of date as read in
// date's location, so pass the birth place's local time.
func (SunriseClock) SunriseSunset(latitude, longitude float64, date time.Time) (time.Time, time.Time) {
	year, month, day := date.Date()
	rise, set := sunrise.SunriseSunset(latitude, longitude, year, month, day)
	return rise.UTC(), set.UTC()
}

var _ astro.DaylightClock = (*SunriseClock)(nil)
