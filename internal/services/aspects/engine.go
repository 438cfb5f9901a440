package aspects

import (
	"math"
	"sort"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/services/zodiac"
)

var bodyRank = func() map[models.BodyName]int {
	m := make(map[models.BodyName]int, len(models.BodyOrder))
	for i, n := range models.BodyOrder {
		m[n] = i
	}
	return m
}()

// Separation folds the angular distance between two longitudes into [0,180].
func Separation(lonA, lonB float64) float64 {
	sep := math.Abs(zodiac.Normalize(lonA) - zodiac.Normalize(lonB))
	if sep > 180 {
		sep = 360 - sep
	}
	return sep
}

// Classify matches a separation against the aspect table. A pair matches the
// type with the smallest deviation, provided the deviation fits its orb.
func Classify(sep float64) (models.AspectType, float64, bool) {
	var best models.AspectType
	bestDev := math.MaxFloat64
	found := false
	for _, at := range models.AspectTypes {
		dev := math.Abs(sep - at.Angle)
		if dev <= at.Orb && dev < bestDev {
			best = at
			bestDev = dev
			found = true
		}
	}
	if !found {
		return models.AspectType{}, 0, false
	}
	return best, bestDev, true
}

// Between classifies every pair of bodies across the two sets. Passing the
// same set twice (natal-natal) walks unordered pairs only, so a body is never
// aspected against itself. Output is sorted by ascending deviation, tightest
// first, with body order breaking ties, so callers can deterministically pick
// the dominant aspect.
func Between(bodiesA, bodiesB []models.CelestialBody) []models.Aspect {
	var out []models.Aspect

	if sameSet(bodiesA, bodiesB) {
		for i := 0; i < len(bodiesA); i++ {
			for j := i + 1; j < len(bodiesA); j++ {
				if a, ok := Pair(bodiesA[i], bodiesA[j]); ok {
					out = append(out, a)
				}
			}
		}
	} else {
		for _, a := range bodiesA {
			for _, b := range bodiesB {
				if asp, ok := Pair(a, b); ok {
					out = append(out, asp)
				}
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Deviation != out[j].Deviation {
			return out[i].Deviation < out[j].Deviation
		}
		if out[i].BodyA != out[j].BodyA {
			return bodyRank[out[i].BodyA] < bodyRank[out[j].BodyA]
		}
		return bodyRank[out[i].BodyB] < bodyRank[out[j].BodyB]
	})
	return out
}

// Pair classifies a single pair of bodies.
func Pair(a, b models.CelestialBody) (models.Aspect, bool) {
	at, dev, ok := Classify(Separation(a.Longitude, b.Longitude))
	if !ok {
		return models.Aspect{}, false
	}
	return models.Aspect{BodyA: a.Name, BodyB: b.Name, Type: at, Deviation: dev}, true
}

// Dominant returns the tightest aspect between the two sets, if any.
func Dominant(bodiesA, bodiesB []models.CelestialBody) (models.Aspect, bool) {
	all := Between(bodiesA, bodiesB)
	if len(all) == 0 {
		return models.Aspect{}, false
	}
	return all[0], true
}

func sameSet(a, b []models.CelestialBody) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Longitude != b[i].Longitude {
			return false
		}
	}
	return true
}
