package astro

import "time"

// CivilMoment is a proleptic Gregorian wall-clock reading. The engine
// treats it as UTC; callers convert from local time before computing.
type CivilMoment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// CivilMomentFromTime copies the calendar fields of t as seen in t's location.
func CivilMomentFromTime(t time.Time) CivilMoment {
	return CivilMoment{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// JulianMoment pairs a Julian Date with Julian centuries since J2000.0.
type JulianMoment struct {
	JD float64
	T  float64
}

// GeoCoordinate is an observer position in radians, longitude positive east.
type GeoCoordinate struct {
	Latitude  float64
	Longitude float64
}

// HorizontalPosition is an azimuth/altitude pair in degrees.
type HorizontalPosition struct {
	Azimuth  float64 `json:"azimuth"`
	Altitude float64 `json:"altitude"`
}

// Profile is the result of a single engine computation. Angles are kept at
// full precision; rounding happens at the transport boundary.
type Profile struct {
	Moment      JulianMoment
	Obliquity   float64
	SunPosition HorizontalPosition
	ZodiacSign  ZodiacSign
	Ascendant   ZodiacSign
	MoonSign    ZodiacSign

	// Degrees in [0, 360).
	SolarLongitude     float64
	LunarLongitude     float64
	AscendantLongitude float64
	SiderealTime       float64
}

// Request is the birth data accepted by the astro service.
type Request struct {
	Date       string   `json:"date"`
	BirthTime  string   `json:"birthTime"`
	BirthPlace string   `json:"birthPlace"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Timezone   string   `json:"timezone,omitempty"`
}

// Response is serialized back to API consumers.
type Response struct {
	SunPosition    HorizontalPosition `json:"sunPosition"`
	ZodiacSign     ZodiacSign         `json:"zodiacSign"`
	Ascendant      ZodiacSign         `json:"ascendant"`
	MoonSign       ZodiacSign         `json:"moonSign"`
	BirthPlace     string             `json:"birthPlace"`
	AdditionalInfo AdditionalInfo     `json:"additionalInfo"`
}

// AdditionalInfo carries derived values that are useful for display and
// debugging but are not part of the sign results.
type AdditionalInfo struct {
	Timezone           string     `json:"timezone"`
	UTC                time.Time  `json:"utc"`
	JulianDate         float64    `json:"julianDate"`
	JulianCenturies    float64    `json:"julianCenturies"`
	Obliquity          float64    `json:"obliquity"`
	SolarLongitude     float64    `json:"solarLongitude"`
	LunarLongitude     float64    `json:"lunarLongitude"`
	AscendantLongitude float64    `json:"ascendantLongitude"`
	Sunrise            *time.Time `json:"sunrise,omitempty"`
	Sunset             *time.Time `json:"sunset,omitempty"`
}

// ProfileRecord is a persisted calculation owned by a user.
type ProfileRecord struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	BirthDate  string    `json:"birthDate"`
	BirthTime  string    `json:"birthTime"`
	BirthPlace string    `json:"birthPlace"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Timezone   string    `json:"timezone"`
	Result     Response  `json:"result"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SignInfo describes a zodiac sector.
type SignInfo struct {
	Sign     ZodiacSign `json:"sign"`
	Index    int        `json:"index"`
	StartDeg float64    `json:"startDegree"`
	EndDeg   float64    `json:"endDegree"`
}

// SignCount is a popularity entry for one sign.
type SignCount struct {
	Sign  ZodiacSign `json:"sign"`
	Count int64      `json:"count"`
}

// Stat kinds tracked by the StatsStore.
const (
	KindZodiac    = "zodiac"
	KindAscendant = "ascendant"
	KindMoon      = "moon"
)

// Config wires runtime behavior for the astro service.
type Config struct {
	DefaultTimezone string
	HistoryLimit    int
	TrendingLimit   int
}
