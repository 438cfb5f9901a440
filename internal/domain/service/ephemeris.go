package service

import (
	"context"
	"time"

	"AstroCore/internal/domain/models"
)

// RawPosition is an ephemeris output for one body at one instant.
type RawPosition struct {
	Longitude float64 // ecliptic longitude, degrees
	Latitude  float64 // ecliptic latitude, degrees
	Distance  float64 // AU
	Speed     float64 // deg/day of longitude; negative means retrograde
}

// HouseGeometry is the angle set for a chart at one instant and place.
type HouseGeometry struct {
	Ascendant float64
	Midheaven float64
	Cusps     []float64 // twelve cusp longitudes, house 1 first
}

// EphemerisSource supplies raw positions and house geometry. Implementations
// must surface any failure as models.ErrEphemerisUnavailable rather than
// returning partial data.
type EphemerisSource interface {
	BodyPositions(ctx context.Context, instant time.Time) (map[models.BodyName]RawPosition, error)
	HouseGeometry(ctx context.Context, instant time.Time, latitude, longitude float64) (HouseGeometry, error)
}
