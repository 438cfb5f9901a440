package chart

import (
	"errors"
	"math"
	"testing"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/service"
)

func fullRaw() map[models.BodyName]service.RawPosition {
	raw := make(map[models.BodyName]service.RawPosition, 10)
	for i, name := range models.BodyOrder {
		raw[name] = service.RawPosition{Longitude: float64(i) * 33.3, Distance: 1, Speed: 0.5}
	}
	return raw
}

func geo() service.HouseGeometry {
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = float64(i) * 30
	}
	return service.HouseGeometry{Ascendant: 0, Midheaven: 270, Cusps: cusps}
}

func birth() models.BirthData {
	return models.BirthData{
		Instant:   time.Date(1990, 6, 15, 8, 30, 0, 0, time.UTC),
		Latitude:  40.71,
		Longitude: -74.01,
		Timezone:  "America/New_York",
	}
}

func TestBuildCompleteChart(t *testing.T) {
	c, err := Build(birth(), fullRaw(), geo())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(c.Bodies) != 10 {
		t.Fatalf("expected 10 bodies, got %d", len(c.Bodies))
	}
	if len(c.Houses) != 12 {
		t.Fatalf("expected 12 houses, got %d", len(c.Houses))
	}
	if c.Houses[0].Cusp != c.Ascendant {
		t.Fatalf("house 1 cusp %v != ascendant %v", c.Houses[0].Cusp, c.Ascendant)
	}
	for i, b := range c.Bodies {
		if b.Name != models.BodyOrder[i] {
			t.Fatalf("body %d is %s, want %s", i, b.Name, models.BodyOrder[i])
		}
		if b.Longitude < 0 || b.Longitude >= 360 {
			t.Fatalf("%s longitude %v outside [0,360)", b.Name, b.Longitude)
		}
	}
}

func TestBuildMissingBody(t *testing.T) {
	raw := fullRaw()
	delete(raw, models.BodyNeptune)
	_, err := Build(birth(), raw, geo())
	if !errors.Is(err, models.ErrIncompleteEphemeris) {
		t.Fatalf("expected ErrIncompleteEphemeris, got %v", err)
	}
}

func TestBuildShortCusps(t *testing.T) {
	g := geo()
	g.Cusps = g.Cusps[:11]
	_, err := Build(birth(), fullRaw(), g)
	if !errors.Is(err, models.ErrIncompleteEphemeris) {
		t.Fatalf("expected ErrIncompleteEphemeris, got %v", err)
	}
}

func TestBuildNonFiniteLongitude(t *testing.T) {
	raw := fullRaw()
	raw[models.BodyMars] = service.RawPosition{Longitude: math.NaN()}
	_, err := Build(birth(), raw, geo())
	if !errors.Is(err, models.ErrInvalidLongitude) {
		t.Fatalf("expected ErrInvalidLongitude, got %v", err)
	}
}

func TestBuildDerivesZodiacPositions(t *testing.T) {
	raw := fullRaw()
	raw[models.BodySun] = service.RawPosition{Longitude: 331.5}
	c, err := Build(birth(), raw, geo())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sun, _ := c.Body(models.BodySun)
	if sun.Position.Sign != models.Pisces || sun.Position.Degree != 1 || sun.Position.Minute != 30 {
		t.Fatalf("Sun at 331.5 mapped to %+v", sun.Position)
	}
}
