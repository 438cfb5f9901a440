package ephemeris

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/services/houses"
)

func localSource(t *testing.T) *LocalSource {
	t.Helper()
	hc, err := houses.New(houses.SystemEqual)
	if err != nil {
		t.Fatalf("houses.New: %v", err)
	}
	return NewLocalSource(hc, models.MinBirthYear, models.MaxBirthYear)
}

func TestBodyPositionsComplete(t *testing.T) {
	src := localSource(t)
	raw, err := src.BodyPositions(context.Background(), time.Date(1990, 6, 15, 8, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BodyPositions: %v", err)
	}
	if len(raw) != 10 {
		t.Fatalf("expected 10 bodies, got %d", len(raw))
	}
	for _, name := range models.BodyOrder {
		p, ok := raw[name]
		if !ok {
			t.Fatalf("missing %s", name)
		}
		if p.Longitude < 0 || p.Longitude >= 360 {
			t.Fatalf("%s longitude %v outside [0,360)", name, p.Longitude)
		}
		if !models.IsFinite(p.Latitude) || !models.IsFinite(p.Distance) || !models.IsFinite(p.Speed) {
			t.Fatalf("%s has non-finite components: %+v", name, p)
		}
	}
}

func TestSunLongitudeNearEquinox(t *testing.T) {
	src := localSource(t)
	// Around the March equinox the Sun sits near 0 Aries.
	raw, err := src.BodyPositions(context.Background(), time.Date(2024, 3, 20, 3, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BodyPositions: %v", err)
	}
	sun := raw[models.BodySun]
	dist := math.Min(sun.Longitude, 360-sun.Longitude)
	if dist > 1.0 {
		t.Fatalf("Sun at equinox should be near 0 deg, got %v", sun.Longitude)
	}
}

func TestSunSpeedAboutOneDegreePerDay(t *testing.T) {
	src := localSource(t)
	raw, err := src.BodyPositions(context.Background(), time.Date(2000, 7, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BodyPositions: %v", err)
	}
	sun := raw[models.BodySun]
	if sun.Speed < 0.9 || sun.Speed > 1.1 {
		t.Fatalf("Sun speed %v deg/day, want ~1", sun.Speed)
	}
	moon := raw[models.BodyMoon]
	if moon.Speed < 11 || moon.Speed > 16 {
		t.Fatalf("Moon speed %v deg/day, want ~13", moon.Speed)
	}
}

func TestPositionsDeterministic(t *testing.T) {
	src := localSource(t)
	instant := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	a, err := src.BodyPositions(context.Background(), instant)
	if err != nil {
		t.Fatalf("BodyPositions: %v", err)
	}
	b, err := src.BodyPositions(context.Background(), instant)
	if err != nil {
		t.Fatalf("BodyPositions: %v", err)
	}
	for _, name := range models.BodyOrder {
		if a[name] != b[name] {
			t.Fatalf("%s not deterministic: %+v vs %+v", name, a[name], b[name])
		}
	}
}

func TestWindowEnforced(t *testing.T) {
	src := localSource(t)
	for _, y := range []int{1820, 2180} {
		_, err := src.BodyPositions(context.Background(), time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC))
		if !errors.Is(err, models.ErrEphemerisUnavailable) {
			t.Fatalf("year %d: expected ErrEphemerisUnavailable, got %v", y, err)
		}
	}
}

func TestHouseGeometryPassesThroughAscendantErrors(t *testing.T) {
	src := localSource(t)
	instant := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := src.HouseGeometry(context.Background(), instant, 80, 0)
	if !errors.Is(err, models.ErrUndefinedAscendant) {
		t.Fatalf("expected ErrUndefinedAscendant, got %v", err)
	}

	geo, err := src.HouseGeometry(context.Background(), instant, 48.85, 2.35)
	if err != nil {
		t.Fatalf("HouseGeometry: %v", err)
	}
	if len(geo.Cusps) != 12 {
		t.Fatalf("expected 12 cusps, got %d", len(geo.Cusps))
	}
	if geo.Cusps[0] != geo.Ascendant {
		t.Fatalf("house 1 cusp %v != ascendant %v", geo.Cusps[0], geo.Ascendant)
	}
}
