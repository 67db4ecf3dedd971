package astro

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/astro-profile/pkg/errors"
)

func TestEngineComputeJ2000Reference(t *testing.T) {
	eph := &stubEphemeris{sun: 90, moon: 223.5, sidereal: 90}
	engine := NewEngine(eph)

	profile, err := engine.Compute(CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12}, CoordinateFromDegrees(0, 0))
	require.NoError(t, err)

	require.Equal(t, 2451545.0, profile.Moment.JD)
	require.Equal(t, 0.0, profile.Moment.T)
	require.Equal(t, []float64{0, 0, 0}, eph.calls)

	require.InDelta(t, 0, profile.SunPosition.Azimuth, 0.01)
	require.InDelta(t, 66.56, profile.SunPosition.Altitude, 0.01)
	require.Equal(t, Cancer, profile.ZodiacSign)
	require.Equal(t, Scorpio, profile.MoonSign)
	require.InDelta(t, 180, profile.AscendantLongitude, 1e-9)
	require.InDelta(t, 90, profile.SolarLongitude, 1e-9)
	require.InDelta(t, 223.5, profile.LunarLongitude, 1e-9)
	require.InDelta(t, 90, profile.SiderealTime, 1e-9)
	require.InDelta(t, epsJ2000Deg, RadiansToDegrees(profile.Obliquity), 1e-9)
}

func TestEngineComputeNormalizesProviderAngles(t *testing.T) {
	engine := NewEngine(&stubEphemeris{sun: -80, moon: 725, sidereal: 460})

	profile, err := engine.Compute(CivilMoment{Year: 1990, Month: 6, Day: 15, Hour: 6}, CoordinateFromDegrees(40, -74))
	require.NoError(t, err)
	require.InDelta(t, 280, profile.SolarLongitude, 1e-9)
	require.Equal(t, Capricorn, profile.ZodiacSign)
	require.InDelta(t, 5, profile.LunarLongitude, 1e-9)
	require.Equal(t, Aries, profile.MoonSign)
	require.InDelta(t, 100, profile.SiderealTime, 1e-9)
	require.InDelta(t, 261.42605234856126, profile.SunPosition.Azimuth, 1e-6)
	require.InDelta(t, -27.1579550823661, profile.SunPosition.Altitude, 1e-6)
	require.InDelta(t, 246.63350981147738, profile.AscendantLongitude, 1e-6)
	require.Equal(t, Sagittarius, profile.Ascendant)
}

func TestEngineComputePoleDoesNotPanic(t *testing.T) {
	engine := NewEngine(&stubEphemeris{sun: 100, moon: 10, sidereal: 33})
	for _, lat := range []float64{90, -90} {
		profile, err := engine.Compute(CivilMoment{Year: 2010, Month: 3, Day: 20, Hour: 17}, CoordinateFromDegrees(lat, 0))
		require.NoError(t, err)
		require.Equal(t, 0.0, profile.SunPosition.Azimuth)
		require.False(t, math.IsNaN(profile.SunPosition.Altitude))
		require.True(t, profile.Ascendant.Valid())
	}
}

func TestEngineComputeErrors(t *testing.T) {
	validMoment := CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12}
	cases := []struct {
		name   string
		eph    Ephemeris
		moment CivilMoment
		coord  GeoCoordinate
		code   string
	}{
		{
			name:   "hour out of range",
			eph:    &stubEphemeris{},
			moment: CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 25},
			code:   CodeInvalidMoment,
		},
		{
			name:   "minute out of range",
			eph:    &stubEphemeris{},
			moment: CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12, Minute: 60},
			code:   CodeInvalidMoment,
		},
		{
			name:   "latitude beyond pole",
			eph:    &stubEphemeris{},
			moment: validMoment,
			coord:  GeoCoordinate{Latitude: math.Pi},
			code:   CodeInvalidCoordinate,
		},
		{
			name:   "longitude NaN",
			eph:    &stubEphemeris{},
			moment: validMoment,
			coord:  GeoCoordinate{Longitude: math.NaN()},
			code:   CodeInvalidCoordinate,
		},
		{
			name:   "provider error",
			eph:    &stubEphemeris{moonErr: errors.New("table missing")},
			moment: validMoment,
			code:   CodeEphemerisFailure,
		},
		{
			name:   "provider returns NaN",
			eph:    &stubEphemeris{sun: math.NaN()},
			moment: validMoment,
			code:   CodeEphemerisFailure,
		},
		{
			name:   "provider returns infinity",
			eph:    &stubEphemeris{sidereal: math.Inf(-1)},
			moment: validMoment,
			code:   CodeEphemerisFailure,
		},
		{
			name:   "no provider",
			eph:    nil,
			moment: validMoment,
			code:   CodeEphemerisFailure,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile, err := NewEngine(tc.eph).Compute(tc.moment, tc.coord)
			require.Error(t, err)
			require.Equal(t, Profile{}, profile)
			require.True(t, apperrors.IsCode(err, CodeCalculation))
			require.True(t, apperrors.HasCode(err, tc.code), "error %v", err)
			require.Equal(t, tc.code, apperrors.CodeOf(err))
		})
	}
}

func TestGeoCoordinateValidateAcceptsExactBounds(t *testing.T) {
	for _, c := range []GeoCoordinate{
		CoordinateFromDegrees(90, 180),
		CoordinateFromDegrees(-90, -180),
		CoordinateFromDegrees(0, 0),
	} {
		require.NoError(t, c.Validate())
	}
}

// stubEphemeris returns fixed angles given in degrees.
type stubEphemeris struct {
	sun, moon, sidereal float64
	sunErr, moonErr     error
	calls               []float64
}

func (s *stubEphemeris) ApparentSolarLongitude(t float64) (float64, error) {
	s.calls = append(s.calls, t)
	return DegreesToRadians(s.sun), s.sunErr
}

func (s *stubEphemeris) ApparentLunarLongitude(t float64) (float64, error) {
	s.calls = append(s.calls, t)
	return DegreesToRadians(s.moon), s.moonErr
}

func (s *stubEphemeris) ApparentSiderealTime(t float64) (float64, error) {
	s.calls = append(s.calls, t)
	return DegreesToRadians(s.sidereal), nil
}
