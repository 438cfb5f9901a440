package zodiac

import (
	"fmt"
	"math"

	"AstroCore/internal/domain/models"
)

// Normalize maps any finite longitude into [0,360).
func Normalize(longitude float64) float64 {
	n := math.Mod(longitude, 360)
	if n < 0 {
		n += 360
	}
	if n >= 360 {
		n -= 360
	}
	return n
}

// SignAt converts an ecliptic longitude into its zodiac position. Non-finite
// input fails with models.ErrInvalidLongitude; no value is ever substituted.
func SignAt(longitude float64) (models.ZodiacPosition, error) {
	if !models.IsFinite(longitude) {
		return models.ZodiacPosition{}, fmt.Errorf("%w: %v", models.ErrInvalidLongitude, longitude)
	}

	n := Normalize(longitude)
	idx := int(n/30) % 12
	within := math.Mod(n, 30)
	deg := int(within)
	minute := int((within - float64(deg)) * 60)

	return models.ZodiacPosition{
		Sign:   models.ZodiacSign(idx),
		Degree: deg,
		Minute: minute,
	}, nil
}

// MustSignAt is SignAt for longitudes already validated as finite, e.g. values
// produced by Normalize. It panics on non-finite input.
func MustSignAt(longitude float64) models.ZodiacPosition {
	p, err := SignAt(longitude)
	if err != nil {
		panic(err)
	}
	return p
}
