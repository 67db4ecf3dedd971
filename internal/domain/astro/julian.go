package astro

import (
	"fmt"

	apperrors "github.com/yanqian/astro-profile/pkg/errors"
)

// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century.
const DaysPerCentury = 36525.0

// ToJulianMoment converts a Gregorian civil moment to a Julian Date and
// Julian centuries since J2000.0. Out-of-range fields are rejected, never
// normalized.
func ToJulianMoment(m CivilMoment) (JulianMoment, error) {
	if err := m.Validate(); err != nil {
		return JulianMoment{}, err
	}

	a := floorDiv(14-m.Month, 12)
	y := m.Year + 4800 - a
	mm := m.Month + 12*a - 3

	jdn := m.Day + floorDiv(153*mm+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
	jd := float64(jdn) +
		float64(m.Hour-12)/24 +
		float64(m.Minute)/1440 +
		float64(m.Second)/86400

	return JulianMoment{JD: jd, T: CenturiesSinceJ2000(jd)}, nil
}

// CenturiesSinceJ2000 returns (jd - J2000) / 36525.
func CenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// JulianDateFromCenturies is the inverse of CenturiesSinceJ2000.
func JulianDateFromCenturies(t float64) float64 {
	return t*DaysPerCentury + J2000
}

// Validate reports whether every field lies in its calendar range.
func (m CivilMoment) Validate() error {
	switch {
	case m.Month < 1 || m.Month > 12:
		return invalidMoment("month %d out of range", m.Month)
	case m.Day < 1 || m.Day > daysInMonth(m.Year, m.Month):
		return invalidMoment("day %d out of range for %04d-%02d", m.Day, m.Year, m.Month)
	case m.Hour < 0 || m.Hour > 23:
		return invalidMoment("hour %d out of range", m.Hour)
	case m.Minute < 0 || m.Minute > 59:
		return invalidMoment("minute %d out of range", m.Minute)
	case m.Second < 0 || m.Second > 59:
		return invalidMoment("second %d out of range", m.Second)
	}
	return nil
}

func invalidMoment(format string, args ...any) error {
	return apperrors.Wrap(CodeInvalidMoment, fmt.Sprintf(format, args...), nil)
}

func daysInMonth(year, month int) int {
	switch month {
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
