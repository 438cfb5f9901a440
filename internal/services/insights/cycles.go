package insights

import (
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/services/aspects"
)

// Slow movers shape the longer cycles; faster bodies churn too quickly to be
// worth labeling as one.
var slowBodies = []models.BodyName{
	models.BodyJupiter, models.BodySaturn, models.BodyUranus, models.BodyNeptune, models.BodyPluto,
}

// natalAnchors are the chart bodies a transit is measured against. The
// Ascendant is a third anchor, taken from the chart's house geometry rather
// than a body.
var natalAnchors = []models.BodyName{models.BodySun, models.BodyMoon}

// anchorPoint is a labeled natal longitude a slow transit can aspect.
type anchorPoint struct {
	label     string
	longitude float64
}

func anchorPoints(c models.BirthChart) []anchorPoint {
	pts := make([]anchorPoint, 0, len(natalAnchors)+1)
	for _, name := range natalAnchors {
		if nb, ok := c.Body(name); ok {
			pts = append(pts, anchorPoint{label: string(name), longitude: nb.Longitude})
		}
	}
	pts = append(pts, anchorPoint{label: "Ascendant", longitude: c.Ascendant})
	return pts
}

var cycleDurations = map[models.BodyName]string{
	models.BodyJupiter: "several weeks",
	models.BodySaturn:  "two to three months",
	models.BodyUranus:  "several months",
	models.BodyNeptune: "several months",
	models.BodyPluto:   "many months",
}

var cycleTitles = map[models.Influence]string{
	models.InfluencePositive:       "A Season of Flow",
	models.InfluenceChallenging:    "A Season of Friction",
	models.InfluenceTransformative: "A Season of Change",
	models.InfluenceNeutral:        "A Quiet Season",
}

var cycleDescriptions = map[models.Influence]string{
	models.InfluencePositive:       "Doors open with less pushing than usual. Commit to what is already working and let ease do part of the labor.",
	models.InfluenceChallenging:    "Resistance is doing its slow work on you. The obstacle in this period is structural, not personal; outlast it with routine.",
	models.InfluenceTransformative: "Something is being rebuilt beneath the surface. Identities held too tightly loosen now so a truer shape can set.",
	models.InfluenceNeutral:        "Background weather, neither ally nor obstacle. Use the slack to tend what louder seasons neglect.",
}

// influenceFor maps an aspect type to its cycle influence.
func influenceFor(name models.AspectName) models.Influence {
	switch name {
	case models.Trine, models.Sextile:
		return models.InfluencePositive
	case models.Square, models.Opposition:
		return models.InfluenceChallenging
	case models.Conjunction:
		return models.InfluenceTransformative
	default:
		return models.InfluenceNeutral
	}
}

// Cycles derives the active slow-planet cycles for the chart at the given
// date. Purely classificatory over the supplied transit positions; the date
// parameter only labels the result set's reference day.
func (g *Generator) Cycles(c models.BirthChart, date time.Time, transits []models.CelestialBody) []models.AstrologicalCycle {
	anchors := anchorPoints(c)

	var out []models.AstrologicalCycle
	for _, slow := range slowBodies {
		tb, ok := transitBody(transits, slow)
		if !ok {
			continue
		}
		for _, anchor := range anchors {
			at, _, ok := aspects.Classify(aspects.Separation(tb.Longitude, anchor.longitude))
			if !ok {
				continue
			}
			infl := influenceFor(at.Name)
			out = append(out, models.AstrologicalCycle{
				Title:       cycleTitles[infl],
				AspectLabel: "Transit " + string(slow) + " " + string(at.Name) + " natal " + anchor.label,
				Duration:    cycleDurations[slow],
				Description: cycleDescriptions[infl],
				Influence:   infl,
			})
		}
	}
	return out
}
