package astro

import (
	"fmt"
	"math"
	"strings"
)

// ZodiacSign is one of the twelve 30° ecliptic sectors, starting at Aries.
type ZodiacSign int

// The signs in ecliptic order.
const (
	Aries ZodiacSign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

const signCount = 12

const sectorDegrees = 360.0 / signCount

var signNames = [signCount]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Classify returns the sign whose half-open sector [30i, 30i+30) contains
// the ecliptic longitude deg after normalizing it into [0, 360). A
// longitude on a boundary belongs to the sign that starts there.
// Non-finite input maps to Aries.
func Classify(deg float64) ZodiacSign {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return Aries
	}
	idx := int(math.Floor(NormalizeDegrees(deg)/sectorDegrees)) % signCount
	return ZodiacSign(idx)
}

// AllSigns lists the signs with their sector bounds in degrees.
func AllSigns() []SignInfo {
	out := make([]SignInfo, 0, signCount)
	for i := 0; i < signCount; i++ {
		out = append(out, SignInfo{
			Sign:     ZodiacSign(i),
			Index:    i,
			StartDeg: float64(i) * sectorDegrees,
			EndDeg:   float64(i+1) * sectorDegrees,
		})
	}
	return out
}

// ParseSign resolves a sign name case-insensitively.
func ParseSign(name string) (ZodiacSign, error) {
	clean := strings.TrimSpace(name)
	for i, n := range signNames {
		if strings.EqualFold(n, clean) {
			return ZodiacSign(i), nil
		}
	}
	return 0, fmt.Errorf("unknown zodiac sign %q", name)
}

// Valid reports whether s is one of the twelve signs.
func (s ZodiacSign) Valid() bool {
	return s >= Aries && s <= Pisces
}

func (s ZodiacSign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("ZodiacSign(%d)", int(s))
	}
	return signNames[s]
}

// MarshalText encodes the sign by name.
func (s ZodiacSign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid zodiac sign %d", int(s))
	}
	return []byte(signNames[s]), nil
}

// UnmarshalText decodes a sign name.
func (s *ZodiacSign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
