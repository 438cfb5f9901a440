package zodiac

import (
	"errors"
	"math"
	"testing"

	"AstroCore/internal/domain/models"
)

func TestSignAtTwelfthSign(t *testing.T) {
	p, err := SignAt(331.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Sign != models.Pisces {
		t.Fatalf("expected sign index 11, got %d", p.Sign)
	}
	if p.Degree != 1 || p.Minute != 30 {
		t.Fatalf("expected 1 degree 30 minutes, got %d deg %d min", p.Degree, p.Minute)
	}
}

func TestSignAtReconstruction(t *testing.T) {
	for l := 0.0; l < 360; l += 0.25 {
		p, err := SignAt(l)
		if err != nil {
			t.Fatalf("SignAt(%v): %v", l, err)
		}
		back := float64(p.Sign)*30 + float64(p.Degree) + float64(p.Minute)/60
		if diff := math.Abs(back - l); diff > 1.0/60 {
			t.Fatalf("longitude %v reconstructed as %v (diff %v)", l, back, diff)
		}
	}
}

func TestSignAtPeriodicity(t *testing.T) {
	for _, l := range []float64{0, 15.5, 123.456, 359.99} {
		base, err := SignAt(l)
		if err != nil {
			t.Fatalf("SignAt(%v): %v", l, err)
		}
		for _, k := range []float64{-2, -1, 1, 3} {
			got, err := SignAt(l + 360*k)
			if err != nil {
				t.Fatalf("SignAt(%v+360*%v): %v", l, k, err)
			}
			if got != base {
				t.Fatalf("SignAt not periodic at %v + 360*%v: %+v vs %+v", l, k, got, base)
			}
		}
	}
}

func TestSignAtBoundaries(t *testing.T) {
	cases := []struct {
		lon  float64
		sign models.ZodiacSign
	}{
		{0, models.Aries},
		{29.999, models.Aries},
		{30, models.Taurus},
		{180, models.Libra},
		{330, models.Pisces},
		{-30, models.Pisces},
	}
	for _, c := range cases {
		p, err := SignAt(c.lon)
		if err != nil {
			t.Fatalf("SignAt(%v): %v", c.lon, err)
		}
		if p.Sign != c.sign {
			t.Fatalf("SignAt(%v): expected %s, got %s", c.lon, c.sign, p.Sign)
		}
	}
}

func TestSignAtRejectsNonFinite(t *testing.T) {
	for _, l := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := SignAt(l); !errors.Is(err, models.ErrInvalidLongitude) {
			t.Fatalf("SignAt(%v): expected ErrInvalidLongitude, got %v", l, err)
		}
	}
}
