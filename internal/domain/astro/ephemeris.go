package astro

// Ephemeris supplies apparent positions as functions of Julian centuries
// since J2000.0. All angles are radians. Implementations must be safe for
// concurrent use; the engine does not recompute or correct their output.
type Ephemeris interface {
	ApparentSolarLongitude(t float64) (float64, error)
	ApparentLunarLongitude(t float64) (float64, error)
	ApparentSiderealTime(t float64) (float64, error)
}
