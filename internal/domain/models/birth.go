package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Supported birth window for the bundled ephemeris. Dates outside are rejected
// up front rather than producing degraded positions.
const (
	MinBirthYear = 1900
	MaxBirthYear = 2100
)

// BirthData is the immutable birth moment and place. It is owned and persisted
// by an external profile store; this engine only receives it by value.
type BirthData struct {
	Instant   time.Time `json:"instant"` // absolute moment, stored UTC
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone"`
	Location  string    `json:"location,omitempty"`
}

// Validate rejects out-of-domain coordinates and unsupported dates before any
// computation is attempted.
func (b BirthData) Validate() error {
	if b.Instant.IsZero() {
		return fmt.Errorf("%w: birth instant is zero", ErrInvalidBirthData)
	}
	y := b.Instant.UTC().Year()
	if y < MinBirthYear || y > MaxBirthYear {
		return fmt.Errorf("%w: birth year %d outside supported window [%d,%d]",
			ErrInvalidBirthData, y, MinBirthYear, MaxBirthYear)
	}
	if !IsFinite(b.Latitude) || b.Latitude < -90 || b.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrInvalidBirthData, b.Latitude)
	}
	if !IsFinite(b.Longitude) || b.Longitude < -180 || b.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrInvalidBirthData, b.Longitude)
	}
	return nil
}

// Fingerprint returns a stable identity for the birth data, suitable as an
// external cache key component. Two identical BirthData values always share a
// fingerprint, on any machine.
func (b BirthData) Fingerprint() string {
	canonical := fmt.Sprintf("%d|%.6f|%.6f|%s",
		b.Instant.UTC().Unix(), b.Latitude, b.Longitude, b.Timezone)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:16])
}
