package astro

// Obliquity returns the mean obliquity of the ecliptic in radians for t
// Julian centuries since J2000.0. The polynomial is accurate to well under
// an arcsecond within a few centuries of J2000; it is evaluated for any t.
func Obliquity(t float64) float64 {
	deg := 23.43929111 - (46.8150+(0.00059-0.001813*t)*t)*t/3600.0
	return deg * degToRad
}
