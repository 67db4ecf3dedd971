package astro

import (
	"testing"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/astro-profile/pkg/errors"
)

var civilBase = time.Date(1999, 3, 1, 18, 0, 0, 0, time.UTC)

func TestToJulianMomentJ2000(t *testing.T) {
	jm, err := ToJulianMoment(CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12})
	require.NoError(t, err)
	require.Equal(t, 2451545.0, jm.JD)
	require.Equal(t, 0.0, jm.T)
}

func TestToJulianMomentKnownDates(t *testing.T) {
	cases := []struct {
		name   string
		moment CivilMoment
		jd     float64
	}{
		{"midnight before epoch", CivilMoment{Year: 2000, Month: 1, Day: 1}, 2451544.5},
		{"1999 new year", CivilMoment{Year: 1999, Month: 1, Day: 1}, 2451179.5},
		{"1987 january", CivilMoment{Year: 1987, Month: 1, Day: 27}, 2446822.5},
		{"1988 june noon", CivilMoment{Year: 1988, Month: 6, Day: 19, Hour: 12}, 2447332.0},
		{"sputnik launch", CivilMoment{Year: 1957, Month: 10, Day: 4, Hour: 19, Minute: 26, Second: 24}, 2436116.31},
		{"1600 new year eve", CivilMoment{Year: 1600, Month: 12, Day: 31}, 2305812.5},
		{"leap day", CivilMoment{Year: 2000, Month: 2, Day: 29, Hour: 12}, 2451604.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jm, err := ToJulianMoment(tc.moment)
			require.NoError(t, err)
			require.InDelta(t, tc.jd, jm.JD, 1e-6)
			require.InDelta(t, (tc.jd-J2000)/36525, jm.T, 1e-12)
		})
	}
}

func TestToJulianMomentMatchesMeeusCalendar(t *testing.T) {
	for year := 1583; year <= 2400; year += 37 {
		for month := 1; month <= 12; month += 5 {
			m := CivilMoment{Year: year, Month: month, Day: 17, Hour: 6, Minute: 30}
			jm, err := ToJulianMoment(m)
			require.NoError(t, err)
			want := julian.CalendarGregorianToJD(year, month, 17+(6*60+30)/1440.0)
			require.InDelta(t, want, jm.JD, 1e-6, "year %d month %d", year, month)
		}
	}
}

func TestToJulianMomentMonotonic(t *testing.T) {
	moments := []CivilMoment{
		{Year: 1899, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
		{Year: 1900, Month: 1, Day: 1},
		{Year: 1900, Month: 2, Day: 28, Hour: 23},
		{Year: 1900, Month: 3, Day: 1},
		{Year: 1999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
		{Year: 2000, Month: 1, Day: 1},
		{Year: 2000, Month: 1, Day: 1, Second: 1},
		{Year: 2000, Month: 1, Day: 1, Minute: 1},
		{Year: 2000, Month: 1, Day: 1, Hour: 12},
		{Year: 2000, Month: 2, Day: 29},
		{Year: 2000, Month: 3, Day: 1},
		{Year: 2024, Month: 7, Day: 15, Hour: 8, Minute: 45},
	}
	prev := -1.0
	for _, m := range moments {
		jm, err := ToJulianMoment(m)
		require.NoError(t, err)
		require.Greater(t, jm.JD, prev, "%+v", m)
		prev = jm.JD
	}

	var last float64
	for day := 0; day < 800; day++ {
		m := CivilMomentFromTime(civilBase.AddDate(0, 0, day))
		jm, err := ToJulianMoment(m)
		require.NoError(t, err)
		if day > 0 {
			require.InDelta(t, 1.0, jm.JD-last, 1e-9, "%+v", m)
		}
		last = jm.JD
	}
}

func TestToJulianMomentRejectsInvalidFields(t *testing.T) {
	cases := map[string]CivilMoment{
		"month 13":      {Year: 2000, Month: 13, Day: 1},
		"month 0":       {Year: 2000, Month: 0, Day: 1},
		"day 32":        {Year: 2000, Month: 1, Day: 32},
		"day 0":         {Year: 2000, Month: 1, Day: 0},
		"april 31":      {Year: 2000, Month: 4, Day: 31},
		"feb 29 2001":   {Year: 2001, Month: 2, Day: 29},
		"feb 29 1900":   {Year: 1900, Month: 2, Day: 29},
		"hour 25":       {Year: 2000, Month: 1, Day: 1, Hour: 25},
		"hour negative": {Year: 2000, Month: 1, Day: 1, Hour: -1},
		"minute 60":     {Year: 2000, Month: 1, Day: 1, Hour: 12, Minute: 60},
		"second 60":     {Year: 2000, Month: 1, Day: 1, Second: 60},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ToJulianMoment(m)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, CodeInvalidMoment))
		})
	}
}

func TestCenturiesRoundTrip(t *testing.T) {
	for _, jd := range []float64{J2000, 2415020.0, 2488069.5, 2460000.25} {
		require.InDelta(t, jd, JulianDateFromCenturies(CenturiesSinceJ2000(jd)), 1e-8)
	}
}

func TestObliquity(t *testing.T) {
	require.InDelta(t, DegreesToRadians(23.43929111), Obliquity(0), 1e-15)
	require.InDelta(t, DegreesToRadians(23.426287283055554), Obliquity(1), 1e-12)
	require.Greater(t, Obliquity(-1), Obliquity(0))
}
