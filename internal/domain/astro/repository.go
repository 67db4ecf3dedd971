package astro

import (
	"context"
	"time"
)

// Repository persists calculated profiles per user.
type Repository interface {
	Save(ctx context.Context, record ProfileRecord) (ProfileRecord, error)
	Latest(ctx context.Context, userID int64) (ProfileRecord, bool, error)
	List(ctx context.Context, userID int64, limit int) ([]ProfileRecord, error)
}

// StatsStore counts how often each sign is produced, per kind.
type StatsStore interface {
	Increment(ctx context.Context, kind string, sign ZodiacSign) error
	Top(ctx context.Context, kind string, limit int) ([]SignCount, error)
}

// DaylightClock reports sunrise and sunset in UTC for the calendar day of
// date in date's own location, at a place given in degrees. Zero times mean
// the Sun does not cross the horizon that day.
type DaylightClock interface {
	SunriseSunset(latitude, longitude float64, date time.Time) (sunrise, sunset time.Time)
}
