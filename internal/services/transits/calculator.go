package transits

import (
	"context"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/service"
	"AstroCore/internal/services/chart"
)

// Calculator resolves body positions for arbitrary target dates. Transit
// positions are location-independent for zodiacal longitude purposes, so no
// observer coordinates are taken.
type Calculator struct {
	src service.EphemerisSource
}

func New(src service.EphemerisSource) *Calculator {
	return &Calculator{src: src}
}

// PositionsAt returns the ten bodies at the given instant, in canonical order
// with zodiac positions derived.
func (c *Calculator) PositionsAt(ctx context.Context, date time.Time) ([]models.CelestialBody, error) {
	raw, err := c.src.BodyPositions(ctx, date)
	if err != nil {
		return nil, err
	}
	return chart.Bodies(raw)
}

// MoonSignAt labels the transiting Moon's sign, for "Moon in X" style output.
func (c *Calculator) MoonSignAt(ctx context.Context, date time.Time) (models.ZodiacSign, error) {
	bodies, err := c.PositionsAt(ctx, date)
	if err != nil {
		return 0, err
	}
	for _, b := range bodies {
		if b.Name == models.BodyMoon {
			return b.Position.Sign, nil
		}
	}
	// chart.Bodies guarantees the Moon is present.
	return 0, models.ErrIncompleteEphemeris
}
