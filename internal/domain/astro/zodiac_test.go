package astro

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyBoundariesBelongToStartingSign(t *testing.T) {
	for i := 0; i < 12; i++ {
		start := float64(i * 30)
		require.Equal(t, ZodiacSign(i), Classify(start), "start of sector %d", i)
		require.Equal(t, ZodiacSign(i), Classify(start+29.999999), "end of sector %d", i)
	}
	require.Equal(t, Pisces, Classify(359.9999999))
	require.Equal(t, Aries, Classify(360))
}

func TestClassifyIsPeriodic(t *testing.T) {
	for _, lon := range []float64{0, 15, 45.5, 100, 200.25, 275, 359} {
		want := Classify(lon)
		for k := -10; k <= 10; k++ {
			require.Equal(t, want, Classify(lon+360*float64(k)), "lon %v k %d", lon, k)
		}
	}
}

func TestClassifyPartitionsCircle(t *testing.T) {
	counts := make(map[ZodiacSign]int)
	prev := Classify(0)
	transitions := 0
	for tenth := 0; tenth < 3600; tenth++ {
		sign := Classify(float64(tenth) / 10)
		counts[sign]++
		if sign != prev {
			require.Equal(t, (prev+1)%12, sign)
			transitions++
		}
		prev = sign
	}
	require.Len(t, counts, 12)
	for sign, n := range counts {
		require.Equal(t, 300, n, "sign %s", sign)
	}
	require.Equal(t, 11, transitions)
}

func TestClassifyNegativeAndNonFinite(t *testing.T) {
	require.Equal(t, Pisces, Classify(-30))
	require.Equal(t, Pisces, Classify(-0.5))
	require.Equal(t, Sagittarius, Classify(-90))
	require.Equal(t, Aries, Classify(math.NaN()))
	require.Equal(t, Aries, Classify(math.Inf(1)))
}

func TestSignNamesAndJSON(t *testing.T) {
	require.Equal(t, "Aries", Aries.String())
	require.Equal(t, "Capricorn", Capricorn.String())
	require.Equal(t, "Pisces", Pisces.String())
	require.Equal(t, "ZodiacSign(12)", ZodiacSign(12).String())

	data, err := json.Marshal(struct {
		Sign ZodiacSign `json:"sign"`
	}{Sign: Scorpio})
	require.NoError(t, err)
	require.JSONEq(t, `{"sign":"Scorpio"}`, string(data))

	var decoded struct {
		Sign ZodiacSign `json:"sign"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"sign":"sagittarius"}`), &decoded))
	require.Equal(t, Sagittarius, decoded.Sign)
	require.Error(t, json.Unmarshal([]byte(`{"sign":"Ophiuchus"}`), &decoded))

	_, err = json.Marshal(ZodiacSign(-1))
	require.Error(t, err)
}

func TestAllSigns(t *testing.T) {
	signs := AllSigns()
	require.Len(t, signs, 12)
	require.Equal(t, Aries, signs[0].Sign)
	require.Equal(t, 0.0, signs[0].StartDeg)
	require.Equal(t, 30.0, signs[0].EndDeg)
	require.Equal(t, Pisces, signs[11].Sign)
	require.Equal(t, 330.0, signs[11].StartDeg)
	require.Equal(t, 360.0, signs[11].EndDeg)
}
