// Package meeus adapts the Meeus "Astronomical Algorithms" implementations
// to the astro.Ephemeris contract.
package meeus

import (
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

// Provider evaluates apparent solar and lunar longitudes and Greenwich
// apparent sidereal time. The difference between TT and UT is ignored:
// T is used both as dynamical time and as universal time.
type Provider struct{}

// NewProvider returns a ready Provider. It has no state.
func NewProvider() *Provider {
	return &Provider{}
}

// ApparentSolarLongitude returns the Sun's apparent longitude referred to
// the true equinox of date, in radians within [0, 2π).
func (p *Provider) ApparentSolarLongitude(t float64) (float64, error) {
	return normalize(solar.ApparentLongitude(t)), nil
}

// ApparentLunarLongitude returns the Moon's geocentric apparent longitude
// in radians within [0, 2π). Latitude and distance are discarded.
func (p *Provider) ApparentLunarLongitude(t float64) (float64, error) {
	lon, _, _ := moonposition.Position(astro.JulianDateFromCenturies(t))
	return normalize(lon), nil
}

// ApparentSiderealTime returns Greenwich apparent sidereal time as an
// angle in radians within [0, 2π).
func (p *Provider) ApparentSiderealTime(t float64) (float64, error) {
	st := sidereal.Apparent(astro.JulianDateFromCenturies(t))
	return normalize(st.Angle()), nil
}

func normalize(a unit.Angle) float64 {
	return astro.NormalizeRadians(a.Rad())
}

var _ astro.Ephemeris = (*Provider)(nil)
