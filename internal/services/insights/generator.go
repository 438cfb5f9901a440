package insights

import (
	"strings"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/services/aspects"
	"AstroCore/internal/services/scoring"
)

// Generator derives narrative text, themes and cycles. Same determinism
// contract as the scoring engine: output is a function of (chart, transits,
// date) only. The variety comes from seeded indexing into fixed corpora, a
// deterministic pseudo-random draw, never a stateful RNG.
type Generator struct{}

func New() *Generator { return &Generator{} }

// Daily produces the day's insight text for the chart.
func (g *Generator) Daily(c models.BirthChart, transits []models.CelestialBody, date time.Time) string {
	cat := g.categoryFor(c, transits)
	return g.compose(c, date, cat, "insight:daily")
}

// Weekly produces the week-bucket insight. All days of one ISO week share it.
func (g *Generator) Weekly(c models.BirthChart, transits []models.CelestialBody, date time.Time) string {
	isoYear, isoWeek := date.UTC().ISOWeek()
	anchor := weekAnchor(isoYear, isoWeek)
	return g.compose(c, anchor, CategoryWeek, "insight:weekly")
}

// Insight generates text for an explicitly requested category, for callers
// with intent (a love tab, a money tab) rather than aspect-driven selection.
func (g *Generator) Insight(c models.BirthChart, date time.Time, cat Category) string {
	if _, ok := corpora[cat]; !ok {
		cat = CategoryGeneral
	}
	return g.compose(c, date, cat, "insight:explicit")
}

// Themes returns count short theme phrases, deterministically drawn without
// repetition from the theme corpus.
func (g *Generator) Themes(c models.BirthChart, transits []models.CelestialBody, count int) []string {
	if count <= 0 {
		return nil
	}
	if count > len(themeCorpus) {
		count = len(themeCorpus)
	}

	moon := transitMoonSign(transits)
	seed := scoring.Seed(c.SunSign(), c.MoonSign(), themeEpoch, "themes")
	seed ^= uint64(moon+1) * 0x9e3779b97f4a7c15

	picked := make([]string, 0, count)
	used := make(map[int]bool, count)
	for step := 0; len(picked) < count; step++ {
		idx := int((seed >> (uint(step) % 48)) % uint64(len(themeCorpus)))
		for used[idx] {
			idx = (idx + 1) % len(themeCorpus)
		}
		used[idx] = true
		picked = append(picked, themeCorpus[idx])
	}
	return picked
}

// themeEpoch pins the theme seed derivation: themes depend on chart identity
// and the transiting Moon sign, not on a caller-supplied date.
var themeEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// categoryFor picks the insight bucket from the dominant natal-Sun versus
// transit-Moon aspect. No aspect in orb falls back to the general bucket.
func (g *Generator) categoryFor(c models.BirthChart, transits []models.CelestialBody) Category {
	sun, ok := c.Body(models.BodySun)
	if !ok {
		return CategoryGeneral
	}
	moon, ok := transitBody(transits, models.BodyMoon)
	if !ok {
		return CategoryGeneral
	}
	a, ok := aspects.Pair(sun, moon)
	if !ok {
		return CategoryGeneral
	}
	switch a.Type.Name {
	case models.Trine, models.Sextile:
		return CategoryLove
	case models.Square:
		return CategoryCareer
	case models.Opposition:
		return CategoryMoney
	case models.Conjunction:
		return CategoryFuture
	default:
		return CategoryGeneral
	}
}

// compose indexes the category corpus with the scoring seed and substitutes
// the sign fillers.
func (g *Generator) compose(c models.BirthChart, date time.Time, cat Category, salt string) string {
	pool := corpora[cat]
	seed := scoring.Seed(c.SunSign(), c.MoonSign(), date, salt+":"+string(cat))
	text := pool[int(seed%uint64(len(pool)))]
	return substitute(text, c)
}

// substitute fills each {axis} placeholder from its sign table, keyed by the
// chart's natal body for that axis.
func substitute(text string, c models.BirthChart) string {
	for name, axis := range axes {
		ph := "{" + name + "}"
		if !strings.Contains(text, ph) {
			continue
		}
		body, ok := c.Body(axis.body)
		if !ok {
			continue
		}
		text = strings.ReplaceAll(text, ph, axis.table[body.Position.Sign])
	}
	return text
}

func transitBody(transits []models.CelestialBody, name models.BodyName) (models.CelestialBody, bool) {
	for _, b := range transits {
		if b.Name == name {
			return b, true
		}
	}
	return models.CelestialBody{}, false
}

func transitMoonSign(transits []models.CelestialBody) models.ZodiacSign {
	if b, ok := transitBody(transits, models.BodyMoon); ok {
		return b.Position.Sign
	}
	return 0
}

// weekAnchor maps an ISO week to its Monday so every day of the week derives
// the same weekly seed.
func weekAnchor(isoYear, isoWeek int) time.Time {
	t := time.Date(isoYear, 1, 4, 0, 0, 0, 0, time.UTC) // Jan 4 is always in ISO week 1
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, -1)
	}
	return t.AddDate(0, 0, (isoWeek-1)*7)
}
