package daylight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSunriseSunsetAtEquinoxGreenwich(t *testing.T) {
	clock := NewSunriseClock()
	rise, set := clock.SunriseSunset(0, 0, time.Date(2000, 3, 20, 12, 0, 0, 0, time.UTC))

	require.False(t, rise.IsZero())
	require.False(t, set.IsZero())
	require.Equal(t, time.UTC, rise.Location())
	require.WithinDuration(t, time.Date(2000, 3, 20, 6, 0, 0, 0, time.UTC), rise, 15*time.Minute)
	require.WithinDuration(t, time.Date(2000, 3, 20, 18, 0, 0, 0, time.UTC), set, 15*time.Minute)
	require.True(t, set.After(rise))
}

func TestSunriseSunsetUsesLocalCalendarDay(t *testing.T) {
	clock := NewSunriseClock()
	tokyo := time.FixedZone("JST", 9*3600)
	// 07:00 JST is still the previous day in UTC.
	rise, set := clock.SunriseSunset(35.68, 139.69, time.Date(1990, 6, 15, 7, 0, 0, 0, tokyo))

	require.Equal(t, time.UTC, rise.Location())
	localRise, localSet := rise.In(tokyo), set.In(tokyo)
	require.Equal(t, 15, localRise.Day())
	require.Equal(t, 15, localSet.Day())
	require.WithinDuration(t, time.Date(1990, 6, 15, 4, 25, 0, 0, tokyo), localRise, 15*time.Minute)
	require.WithinDuration(t, time.Date(1990, 6, 15, 19, 0, 0, 0, tokyo), localSet, 15*time.Minute)
}

func TestSunriseSunsetPolarNight(t *testing.T) {
	clock := NewSunriseClock()
	rise, set := clock.SunriseSunset(80, 15, time.Date(2020, 12, 21, 12, 0, 0, 0, time.UTC))

	require.True(t, rise.IsZero())
	require.True(t, set.IsZero())
}
