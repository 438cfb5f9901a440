package chart

import (
	"fmt"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/service"
	"AstroCore/internal/services/zodiac"
)

// Build assembles a natal chart from validated birth data plus raw ephemeris
// output. It is pure assembly: the only fallible step is requiring exactly ten
// named bodies and twelve cusps.
func Build(birth models.BirthData, raw map[models.BodyName]service.RawPosition, geo service.HouseGeometry) (models.BirthChart, error) {
	bodies, err := Bodies(raw)
	if err != nil {
		return models.BirthChart{}, err
	}

	if len(geo.Cusps) != 12 {
		return models.BirthChart{}, fmt.Errorf("%w: %d house cusps, want 12", models.ErrIncompleteEphemeris, len(geo.Cusps))
	}
	if !models.IsFinite(geo.Ascendant) || !models.IsFinite(geo.Midheaven) {
		return models.BirthChart{}, fmt.Errorf("%w: non-finite chart angles", models.ErrIncompleteEphemeris)
	}

	houses := make([]models.House, 12)
	for i, cusp := range geo.Cusps {
		if !models.IsFinite(cusp) {
			return models.BirthChart{}, fmt.Errorf("%w: non-finite cusp for house %d", models.ErrIncompleteEphemeris, i+1)
		}
		houses[i] = models.House{Number: i + 1, Cusp: zodiac.Normalize(cusp)}
	}

	return models.BirthChart{
		Birth:     birth,
		Bodies:    bodies,
		Ascendant: zodiac.Normalize(geo.Ascendant),
		Midheaven: zodiac.Normalize(geo.Midheaven),
		Houses:    houses,
	}, nil
}

// Bodies converts a raw position map into the canonical ten-body slice, in
// BodyOrder, deriving each zodiac position. A missing body or a non-finite
// longitude fails loudly.
func Bodies(raw map[models.BodyName]service.RawPosition) ([]models.CelestialBody, error) {
	out := make([]models.CelestialBody, 0, len(models.BodyOrder))
	for _, name := range models.BodyOrder {
		rp, ok := raw[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", models.ErrIncompleteEphemeris, name)
		}
		pos, err := zodiac.SignAt(rp.Longitude)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, models.CelestialBody{
			Name:      name,
			Symbol:    name.Symbol(),
			Longitude: zodiac.Normalize(rp.Longitude),
			Latitude:  rp.Latitude,
			Distance:  rp.Distance,
			Speed:     rp.Speed,
			Position:  pos,
		})
	}
	return out, nil
}
