package ephemeris

import (
	"context"
	"fmt"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/service"
	"AstroCore/internal/services/houses"
	"AstroCore/internal/services/zodiac"
)

// LocalSource is the bundled analytic ephemeris. It is fully offline and
// deterministic: the same instant always yields the same positions, on any
// machine. This is the canonical source; the HTTP source exists only as an
// optional higher-precision enrichment.
type LocalSource struct {
	houses  *houses.Calculator
	minYear int
	maxYear int
}

// NewLocalSource builds the local adapter with the supported date window.
func NewLocalSource(hc *houses.Calculator, minYear, maxYear int) *LocalSource {
	return &LocalSource{houses: hc, minYear: minYear, maxYear: maxYear}
}

var _ service.EphemerisSource = (*LocalSource)(nil)

// epochDays converts an instant to days since the theory epoch (2000-01-00 UT).
func epochDays(t time.Time) float64 {
	return houses.JulianDay(t) - 2451543.5
}

func (s *LocalSource) checkWindow(instant time.Time) error {
	y := instant.UTC().Year()
	if y < s.minYear || y > s.maxYear {
		return fmt.Errorf("%w: year %d outside supported window [%d,%d]",
			models.ErrEphemerisUnavailable, y, s.minYear, s.maxYear)
	}
	return nil
}

// BodyPositions computes all ten bodies at the given instant. Longitude speed
// comes from a central difference over one day, so its sign flags retrograde
// motion.
func (s *LocalSource) BodyPositions(_ context.Context, instant time.Time) (map[models.BodyName]service.RawPosition, error) {
	if err := s.checkWindow(instant); err != nil {
		return nil, err
	}

	d := epochDays(instant)
	out := make(map[models.BodyName]service.RawPosition, len(models.BodyOrder))
	for _, name := range models.BodyOrder {
		lon, lat, dist := bodyState(name, d)
		if !models.IsFinite(lon) || !models.IsFinite(lat) || !models.IsFinite(dist) {
			return nil, fmt.Errorf("%w: non-finite state for %s", models.ErrEphemerisUnavailable, name)
		}
		before, _, _ := bodyState(name, d-0.5)
		after, _, _ := bodyState(name, d+0.5)
		out[name] = service.RawPosition{
			Longitude: lon,
			Latitude:  lat,
			Distance:  dist,
			Speed:     signedArc(before, after),
		}
	}
	return out, nil
}

// HouseGeometry delegates the angle math to the houses package so that local
// and remote sources agree on chart geometry.
func (s *LocalSource) HouseGeometry(_ context.Context, instant time.Time, latitude, longitude float64) (service.HouseGeometry, error) {
	if err := s.checkWindow(instant); err != nil {
		return service.HouseGeometry{}, err
	}
	asc, mc, hs, err := s.houses.Houses(instant, latitude, longitude)
	if err != nil {
		return service.HouseGeometry{}, err
	}
	cusps := make([]float64, len(hs))
	for i, h := range hs {
		cusps[i] = h.Cusp
	}
	return service.HouseGeometry{Ascendant: asc, Midheaven: mc, Cusps: cusps}, nil
}

func bodyState(name models.BodyName, d float64) (lon, lat, dist float64) {
	switch name {
	case models.BodySun:
		lon, dist = sunState(d)
		return lon, 0, dist
	case models.BodyMoon:
		return moonState(d)
	default:
		return planetState(name, d)
	}
}

// signedArc is the smallest signed angular travel from a to b, in degrees.
func signedArc(a, b float64) float64 {
	return zodiac.Normalize(b-a+180) - 180
}
