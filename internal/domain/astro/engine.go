package astro

import (
	"fmt"
	"math"

	apperrors "github.com/yanqian/astro-profile/pkg/errors"
)

// Engine composes the time conversion, coordinate transforms and sign
// classification into a Profile. It holds no mutable state.
type Engine struct {
	ephemeris Ephemeris
}

// NewEngine builds an Engine around an ephemeris provider.
func NewEngine(ephemeris Ephemeris) *Engine {
	return &Engine{ephemeris: ephemeris}
}

// Compute derives the sun position and the three signs for a UTC civil
// moment and an observer coordinate in radians. Any failure is returned
// as a calculation_error wrapping the originating error; no partial
// profile is ever returned.
func (e *Engine) Compute(moment CivilMoment, coord GeoCoordinate) (Profile, error) {
	profile, err := e.compute(moment, coord)
	if err != nil {
		return Profile{}, apperrors.Wrap(CodeCalculation, "astro calculation failed", err)
	}
	return profile, nil
}

func (e *Engine) compute(moment CivilMoment, coord GeoCoordinate) (Profile, error) {
	if err := coord.Validate(); err != nil {
		return Profile{}, err
	}
	if e.ephemeris == nil {
		return Profile{}, apperrors.Wrap(CodeEphemerisFailure, "ephemeris provider not configured", nil)
	}
	jm, err := ToJulianMoment(moment)
	if err != nil {
		return Profile{}, err
	}
	eps := Obliquity(jm.T)

	sunLon, err := e.query("solar longitude", e.ephemeris.ApparentSolarLongitude, jm.T)
	if err != nil {
		return Profile{}, err
	}
	moonLon, err := e.query("lunar longitude", e.ephemeris.ApparentLunarLongitude, jm.T)
	if err != nil {
		return Profile{}, err
	}
	sidereal, err := e.query("sidereal time", e.ephemeris.ApparentSiderealTime, jm.T)
	if err != nil {
		return Profile{}, err
	}

	sun := SolarHorizontal(sunLon, sidereal, eps, coord)
	lst := LocalSiderealTime(sidereal, coord.Longitude)
	ascLon := AscendantLongitude(lst, eps, coord.Latitude)
	sunDeg := NormalizeDegrees(sunLon * radToDeg)
	moonDeg := NormalizeDegrees(moonLon * radToDeg)

	return Profile{
		Moment:             jm,
		Obliquity:          eps,
		SunPosition:        sun,
		ZodiacSign:         Classify(sunDeg),
		Ascendant:          Classify(ascLon),
		MoonSign:           Classify(moonDeg),
		SolarLongitude:     sunDeg,
		LunarLongitude:     moonDeg,
		AscendantLongitude: ascLon,
		SiderealTime:       NormalizeDegrees(sidereal * radToDeg),
	}, nil
}

func (e *Engine) query(name string, fn func(float64) (float64, error), t float64) (float64, error) {
	v, err := fn(t)
	if err != nil {
		return 0, apperrors.Wrap(CodeEphemerisFailure, name+" unavailable", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.Wrap(CodeEphemerisFailure, fmt.Sprintf("%s is not finite", name), nil)
	}
	return v, nil
}

// Validate checks that the coordinate is finite and physically in range.
func (c GeoCoordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) || c.Latitude < -math.Pi/2 || c.Latitude > math.Pi/2 {
		return apperrors.Wrap(CodeInvalidCoordinate, fmt.Sprintf("latitude %v rad out of range", c.Latitude), nil)
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) || c.Longitude < -math.Pi || c.Longitude > math.Pi {
		return apperrors.Wrap(CodeInvalidCoordinate, fmt.Sprintf("longitude %v rad out of range", c.Longitude), nil)
	}
	return nil
}

// CoordinateFromDegrees converts latitude/longitude degrees to radians.
func CoordinateFromDegrees(latitude, longitude float64) GeoCoordinate {
	return GeoCoordinate{
		Latitude:  DegreesToRadians(latitude),
		Longitude: DegreesToRadians(longitude),
	}
}
