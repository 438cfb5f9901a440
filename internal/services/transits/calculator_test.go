package transits

import (
	"context"
	"errors"
	"testing"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/service"
)

// stubSource returns fixed positions, or an error when failing is set.
type stubSource struct {
	positions map[models.BodyName]service.RawPosition
	failing   bool
}

func (s *stubSource) BodyPositions(context.Context, time.Time) (map[models.BodyName]service.RawPosition, error) {
	if s.failing {
		return nil, models.ErrEphemerisUnavailable
	}
	return s.positions, nil
}

func (s *stubSource) HouseGeometry(context.Context, time.Time, float64, float64) (service.HouseGeometry, error) {
	return service.HouseGeometry{}, models.ErrEphemerisUnavailable
}

func fixedPositions() map[models.BodyName]service.RawPosition {
	out := make(map[models.BodyName]service.RawPosition, 10)
	for i, name := range models.BodyOrder {
		out[name] = service.RawPosition{Longitude: float64(i * 36), Speed: 1}
	}
	out[models.BodyMoon] = service.RawPosition{Longitude: 123.4, Speed: 13.2}
	return out
}

func TestPositionsAtCanonicalOrder(t *testing.T) {
	c := New(&stubSource{positions: fixedPositions()})
	bodies, err := c.PositionsAt(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("PositionsAt: %v", err)
	}
	if len(bodies) != 10 {
		t.Fatalf("expected 10 bodies, got %d", len(bodies))
	}
	for i, b := range bodies {
		if b.Name != models.BodyOrder[i] {
			t.Fatalf("position %d is %s, want %s", i, b.Name, models.BodyOrder[i])
		}
	}
}

func TestPositionsAtPropagatesUnavailable(t *testing.T) {
	c := New(&stubSource{failing: true})
	_, err := c.PositionsAt(context.Background(), time.Now())
	if !errors.Is(err, models.ErrEphemerisUnavailable) {
		t.Fatalf("expected ErrEphemerisUnavailable, got %v", err)
	}
}

func TestPositionsAtRejectsPartialData(t *testing.T) {
	pos := fixedPositions()
	delete(pos, models.BodySaturn)
	c := New(&stubSource{positions: pos})
	_, err := c.PositionsAt(context.Background(), time.Now())
	if !errors.Is(err, models.ErrIncompleteEphemeris) {
		t.Fatalf("expected ErrIncompleteEphemeris, got %v", err)
	}
}

func TestMoonSignAt(t *testing.T) {
	c := New(&stubSource{positions: fixedPositions()})
	sign, err := c.MoonSignAt(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("MoonSignAt: %v", err)
	}
	if sign != models.Leo { // 123.4 deg sits in Leo
		t.Fatalf("expected Leo, got %s", sign)
	}
}
