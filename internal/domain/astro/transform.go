package astro

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// Below this the azimuth denominator cos(lat)*cos(alt) is treated as zero.
	azimuthEpsilon = 1e-12
)

// EclipticToEquatorial converts an ecliptic longitude (zero latitude) to
// right ascension and declination, all in radians.
func EclipticToEquatorial(lon, obliquity float64) (ra, dec float64) {
	sinLon, cosLon := math.Sincos(lon)
	ra = math.Atan2(math.Cos(obliquity)*sinLon, cosLon)
	dec = math.Asin(clampUnit(math.Sin(obliquity) * sinLon))
	return ra, dec
}

// LocalSiderealTime subtracts the observer longitude from Greenwich
// sidereal time. Longitude is positive east; the subtraction is the
// west-positive convention every downstream formula here is built on.
func LocalSiderealTime(greenwich, longitude float64) float64 {
	return greenwich - longitude
}

// SolarHorizontal projects the Sun onto the observer's horizon.
// solarLon, sidereal and obliquity are radians; the result is degrees.
// At the poles or with the Sun at zenith/nadir the azimuth is undefined
// and reported as 0.
func SolarHorizontal(solarLon, sidereal, obliquity float64, coord GeoCoordinate) HorizontalPosition {
	ra, dec := EclipticToEquatorial(solarLon, obliquity)
	lst := LocalSiderealTime(sidereal, coord.Longitude)
	hourAngle := lst - ra

	sinLat, cosLat := math.Sincos(coord.Latitude)
	sinDec, cosDec := math.Sincos(dec)

	alt := math.Asin(clampUnit(sinLat*sinDec + cosLat*cosDec*math.Cos(hourAngle)))

	var az float64
	denom := cosLat * math.Cos(alt)
	if math.Abs(denom) >= azimuthEpsilon {
		cosAz := (sinDec - sinLat*math.Sin(alt)) / denom
		az = NormalizeDegrees(math.Atan2(math.Sin(hourAngle), cosAz) * radToDeg)
	}

	return HorizontalPosition{
		Azimuth:  az,
		Altitude: alt * radToDeg,
	}
}

// AscendantLongitude returns the ecliptic longitude, in degrees within
// [0, 360), rising on the eastern horizon for a local sidereal time
// (RAMC) and latitude given in radians.
func AscendantLongitude(lst, obliquity, latitude float64) float64 {
	sinLst, cosLst := math.Sincos(lst)
	lon := math.Atan2(cosLst, -(sinLst*math.Cos(obliquity) + math.Tan(latitude)*math.Sin(obliquity)))
	return NormalizeDegrees(lon * radToDeg)
}

// NormalizeDegrees maps any finite angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

// NormalizeRadians maps any finite angle into [0, 2π).
func NormalizeRadians(rad float64) float64 {
	r := math.Mod(rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return r
}

// DegreesToRadians converts an angle from degrees. Dividing first keeps
// ±90 and ±180 exactly equal to ±π/2 and ±π.
func DegreesToRadians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// RadiansToDegrees converts an angle to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad * radToDeg
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
