package aspects

import (
	"testing"

	"AstroCore/internal/domain/models"
)

func body(name models.BodyName, lon float64) models.CelestialBody {
	return models.CelestialBody{Name: name, Longitude: lon}
}

func TestClassifyExactAngles(t *testing.T) {
	cases := []struct {
		sep  float64
		name models.AspectName
	}{
		{0, models.Conjunction},
		{60, models.Sextile},
		{90, models.Square},
		{120, models.Trine},
		{180, models.Opposition},
	}
	for _, c := range cases {
		at, dev, ok := Classify(c.sep)
		if !ok {
			t.Fatalf("separation %v: expected match", c.sep)
		}
		if at.Name != c.name {
			t.Fatalf("separation %v: expected %s, got %s", c.sep, c.name, at.Name)
		}
		if dev != 0 {
			t.Fatalf("separation %v: expected zero deviation, got %v", c.sep, dev)
		}
	}
}

func TestClassifyOrbLimits(t *testing.T) {
	if _, _, ok := Classify(90 + 8.01); ok {
		t.Fatalf("90+8.01 should not classify as square")
	}
	at, _, ok := Classify(90 + 7.99)
	if !ok || at.Name != models.Square {
		t.Fatalf("90+7.99 should classify as square, got %v ok=%v", at.Name, ok)
	}
	if _, _, ok := Classify(60 + 6.5); ok {
		t.Fatalf("sextile orb is 6, 66.5 should not match")
	}
}

func TestPairSquareZeroDeviation(t *testing.T) {
	a, ok := Pair(body(models.BodySun, 10), body(models.BodyMoon, 100))
	if !ok {
		t.Fatalf("expected an aspect")
	}
	if a.Type.Name != models.Square || a.Deviation != 0 {
		t.Fatalf("expected exact square, got %s dev %v", a.Type.Name, a.Deviation)
	}
}

func TestSeparationFolding(t *testing.T) {
	if s := Separation(350, 10); s != 20 {
		t.Fatalf("wrap-around separation = %v, want 20", s)
	}
	if s := Separation(0, 180); s != 180 {
		t.Fatalf("separation = %v, want 180", s)
	}
}

func TestBetweenSortedByDeviation(t *testing.T) {
	natal := []models.CelestialBody{
		body(models.BodySun, 0),
		body(models.BodyMoon, 92),   // square Sun, dev 2
		body(models.BodyVenus, 121), // trine Sun, dev 1
	}
	out := Between(natal, natal)
	if len(out) == 0 {
		t.Fatalf("expected aspects")
	}
	for i := 1; i < len(out); i++ {
		if out[i].Deviation < out[i-1].Deviation {
			t.Fatalf("output not sorted by deviation: %v after %v", out[i].Deviation, out[i-1].Deviation)
		}
	}
	if out[0].BodyA != models.BodySun || out[0].BodyB != models.BodyVenus {
		t.Fatalf("tightest aspect should be Sun-Venus trine, got %s-%s", out[0].BodyA, out[0].BodyB)
	}
}

func TestBetweenSameSetSkipsSelfPairs(t *testing.T) {
	natal := []models.CelestialBody{
		body(models.BodySun, 0),
		body(models.BodyMoon, 200),
	}
	out := Between(natal, natal)
	for _, a := range out {
		if a.BodyA == a.BodyB {
			t.Fatalf("self aspect produced: %s", a.Label())
		}
	}
}

func TestBetweenCrossSetsIncludesSameName(t *testing.T) {
	natal := []models.CelestialBody{body(models.BodySun, 10)}
	transit := []models.CelestialBody{body(models.BodySun, 12)}
	out := Between(natal, transit)
	if len(out) != 1 || out[0].Type.Name != models.Conjunction {
		t.Fatalf("natal Sun vs transit Sun should conjunct, got %+v", out)
	}
}

func TestDominantDeterministic(t *testing.T) {
	natal := []models.CelestialBody{
		body(models.BodySun, 0),
		body(models.BodyMoon, 90),
	}
	transit := []models.CelestialBody{
		body(models.BodyMoon, 120),
		body(models.BodyMars, 30),
	}
	a1, ok1 := Dominant(natal, transit)
	a2, ok2 := Dominant(natal, transit)
	if !ok1 || !ok2 || a1 != a2 {
		t.Fatalf("dominant aspect not stable: %+v vs %+v", a1, a2)
	}
}
