package insights

import (
	"strings"
	"testing"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/service"
	"AstroCore/internal/services/chart"
)

func fixedChart(t *testing.T) models.BirthChart {
	t.Helper()
	raw := make(map[models.BodyName]service.RawPosition, 10)
	for i, name := range models.BodyOrder {
		raw[name] = service.RawPosition{Longitude: float64(15 + i*37)}
	}
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = float64(i * 30)
	}
	birth := models.BirthData{
		Instant:   time.Date(1988, 2, 29, 14, 0, 0, 0, time.UTC),
		Latitude:  51.5,
		Longitude: -0.12,
		Timezone:  "Europe/London",
	}
	c, err := chart.Build(birth, raw, service.HouseGeometry{Ascendant: 100, Midheaven: 10, Cusps: cusps})
	if err != nil {
		t.Fatalf("chart.Build: %v", err)
	}
	return c
}

func fixedTransits(moonLon float64) []models.CelestialBody {
	out := make([]models.CelestialBody, 0, 10)
	for i, name := range models.BodyOrder {
		lon := float64((200 + i*13) % 360)
		if name == models.BodyMoon {
			lon = moonLon
		}
		b := models.CelestialBody{Name: name, Longitude: lon}
		b.Position.Sign = models.ZodiacSign(int(lon/30) % 12)
		out = append(out, b)
	}
	return out
}

func TestDailyDeterministicAndFilled(t *testing.T) {
	g := New()
	c := fixedChart(t)
	tr := fixedTransits(75)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	first := g.Daily(c, tr, date)
	if first == "" {
		t.Fatalf("empty insight")
	}
	if strings.Contains(first, "{") || strings.Contains(first, "}") {
		t.Fatalf("unsubstituted placeholder in %q", first)
	}
	for i := 0; i < 50; i++ {
		if got := g.Daily(c, tr, date); got != first {
			t.Fatalf("daily insight not deterministic: %q vs %q", got, first)
		}
	}
}

func TestDailyVariesAcrossDays(t *testing.T) {
	g := New()
	c := fixedChart(t)
	tr := fixedTransits(75)
	seen := map[string]bool{}
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 14; day++ {
		seen[g.Daily(c, tr, date.AddDate(0, 0, day))] = true
	}
	if len(seen) < 2 {
		t.Fatalf("insight identical across two weeks")
	}
}

func TestWeeklySharedAcrossWeek(t *testing.T) {
	g := New()
	c := fixedChart(t)
	tr := fixedTransits(75)
	// 2024-03-11 through 2024-03-17 is one ISO week.
	mon := g.Weekly(c, tr, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	sun := g.Weekly(c, tr, time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC))
	if mon != sun {
		t.Fatalf("weekly insight differs within one ISO week")
	}
	next := g.Weekly(c, tr, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC))
	if next == mon {
		t.Logf("adjacent weeks drew the same corpus entry; acceptable but rare")
	}
}

func TestThemesCountAndDeterminism(t *testing.T) {
	g := New()
	c := fixedChart(t)
	tr := fixedTransits(75)

	themes := g.Themes(c, tr, 3)
	if len(themes) != 3 {
		t.Fatalf("expected 3 themes, got %d", len(themes))
	}
	seen := map[string]bool{}
	for _, th := range themes {
		if seen[th] {
			t.Fatalf("duplicate theme %q", th)
		}
		seen[th] = true
	}
	again := g.Themes(c, tr, 3)
	for i := range themes {
		if themes[i] != again[i] {
			t.Fatalf("themes not deterministic: %v vs %v", themes, again)
		}
	}
}

func TestThemesDependOnTransitMoon(t *testing.T) {
	g := New()
	c := fixedChart(t)
	a := g.Themes(c, fixedTransits(10), 3)
	b := g.Themes(c, fixedTransits(200), 3)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Logf("theme draw coincided across moon signs; tolerated, draw is seeded")
	}
}

func TestCyclesInfluenceMapping(t *testing.T) {
	g := New()
	c := fixedChart(t)

	sun, _ := c.Body(models.BodySun)
	tr := []models.CelestialBody{
		{Name: models.BodyJupiter, Longitude: sun.Longitude + 120}, // trine
		{Name: models.BodySaturn, Longitude: sun.Longitude + 90},   // square
		{Name: models.BodyPluto, Longitude: sun.Longitude},         // conjunction
	}
	cycles := g.Cycles(c, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), tr)
	if len(cycles) == 0 {
		t.Fatalf("expected cycles")
	}
	byLabel := map[string]models.Influence{}
	for _, cy := range cycles {
		byLabel[cy.AspectLabel] = cy.Influence
		if cy.Title == "" || cy.Duration == "" || cy.Description == "" {
			t.Fatalf("incomplete cycle %+v", cy)
		}
	}
	if infl := byLabel["Transit Jupiter trine natal Sun"]; infl != models.InfluencePositive {
		t.Fatalf("Jupiter trine should be positive, got %s", infl)
	}
	if infl := byLabel["Transit Saturn square natal Sun"]; infl != models.InfluenceChallenging {
		t.Fatalf("Saturn square should be challenging, got %s", infl)
	}
	if infl := byLabel["Transit Pluto conjunction natal Sun"]; infl != models.InfluenceTransformative {
		t.Fatalf("Pluto conjunction should be transformative, got %s", infl)
	}
}

func TestCyclesAnchorAscendant(t *testing.T) {
	g := New()
	c := fixedChart(t) // ascendant at 100

	tr := []models.CelestialBody{
		{Name: models.BodyUranus, Longitude: c.Ascendant + 180}, // opposition
		{Name: models.BodyNeptune, Longitude: c.Ascendant + 60}, // sextile
	}
	cycles := g.Cycles(c, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), tr)

	byLabel := map[string]models.Influence{}
	for _, cy := range cycles {
		byLabel[cy.AspectLabel] = cy.Influence
	}
	if infl, ok := byLabel["Transit Uranus opposition natal Ascendant"]; !ok || infl != models.InfluenceChallenging {
		t.Fatalf("expected challenging Uranus opposition to the ascendant, got %v (%t)", infl, ok)
	}
	if infl, ok := byLabel["Transit Neptune sextile natal Ascendant"]; !ok || infl != models.InfluencePositive {
		t.Fatalf("expected positive Neptune sextile to the ascendant, got %v (%t)", infl, ok)
	}
}

func TestClassifyTagsWithoutAlteringText(t *testing.T) {
	text := "Money follows attention today. A half-hour with your accounts pays for itself."
	tags := Classify(text)
	found := false
	for _, tag := range tags {
		if tag == "money" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected money tag, got %v", tags)
	}
	if again := Classify(text); len(again) != len(tags) {
		t.Fatalf("classifier not stable")
	}
}

func TestInsightExplicitCategory(t *testing.T) {
	g := New()
	c := fixedChart(t)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	text := g.Insight(c, date, CategoryMoney)
	if text == "" || strings.Contains(text, "{") {
		t.Fatalf("bad explicit insight %q", text)
	}
	if g.Insight(c, date, Category("bogus")) == "" {
		t.Fatalf("unknown category should fall back to general")
	}
}
