package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/service"
	"AstroCore/internal/services/insights"
	"AstroCore/internal/services/scoring"
	"AstroCore/internal/services/transits"
	"AstroCore/pkg/cache"
)

// stubSource serves fixed positions and geometry, counting calls so cache
// behavior is observable.
type stubSource struct {
	positionCalls int
	failing       bool
}

func (s *stubSource) BodyPositions(_ context.Context, instant time.Time) (map[models.BodyName]service.RawPosition, error) {
	if s.failing {
		return nil, models.ErrEphemerisUnavailable
	}
	s.positionCalls++
	out := make(map[models.BodyName]service.RawPosition, len(models.BodyOrder))
	for i, name := range models.BodyOrder {
		// Spread bodies around the wheel and move them 13 degrees per
		// calendar day, so transits differ from natal positions and the
		// Moon changes sign between days of one week.
		out[name] = service.RawPosition{
			Longitude: float64((i*36 + instant.Day()*13) % 360),
			Speed:     1,
		}
	}
	return out, nil
}

func (s *stubSource) HouseGeometry(context.Context, time.Time, float64, float64) (service.HouseGeometry, error) {
	if s.failing {
		return service.HouseGeometry{}, models.ErrEphemerisUnavailable
	}
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = float64(i * 30)
	}
	return service.HouseGeometry{Ascendant: 0, Midheaven: 270, Cusps: cusps}, nil
}

func newAggregator(src service.EphemerisSource) *HoroscopeAggregator {
	return NewHoroscopeAggregator(src, transits.New(src), scoring.New(), insights.New(), nil)
}

func testBirth() models.BirthData {
	return models.BirthData{
		Instant:   time.Date(1990, 6, 15, 8, 30, 0, 0, time.UTC),
		Latitude:  40.7,
		Longitude: -74.0,
		Timezone:  "UTC",
	}
}

func TestBuildChartComplete(t *testing.T) {
	agg := newAggregator(&stubSource{})
	c, err := agg.BuildChart(context.Background(), testBirth())
	if err != nil {
		t.Fatalf("BuildChart: %v", err)
	}
	if len(c.Bodies) != 10 {
		t.Fatalf("expected 10 bodies, got %d", len(c.Bodies))
	}
	if len(c.Houses) != 12 {
		t.Fatalf("expected 12 houses, got %d", len(c.Houses))
	}
}

func TestBuildChartRejectsInvalidBirth(t *testing.T) {
	agg := newAggregator(&stubSource{})
	birth := testBirth()
	birth.Latitude = 120

	_, err := agg.BuildChart(context.Background(), birth)
	if !errors.Is(err, models.ErrInvalidBirthData) {
		t.Fatalf("expected ErrInvalidBirthData, got %v", err)
	}
}

func TestBuildChartPropagatesEphemerisFailure(t *testing.T) {
	agg := newAggregator(&stubSource{failing: true})
	_, err := agg.BuildChart(context.Background(), testBirth())
	if !errors.Is(err, models.ErrEphemerisUnavailable) {
		t.Fatalf("expected ErrEphemerisUnavailable, got %v", err)
	}
}

func TestDailyDeterministic(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	first, err := newAggregator(&stubSource{}).Daily(context.Background(), testBirth(), date)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	second, err := newAggregator(&stubSource{}).Daily(context.Background(), testBirth(), date)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}

	if first.Scores != second.Scores {
		t.Fatalf("scores differ: %+v vs %+v", first.Scores, second.Scores)
	}
	if first.Insight != second.Insight {
		t.Fatalf("insights differ")
	}
	if first.MoonSign != second.MoonSign {
		t.Fatalf("moon signs differ")
	}
}

func TestDailyScoresBounded(t *testing.T) {
	out, err := newAggregator(&stubSource{}).Daily(context.Background(), testBirth(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	for name, v := range map[string]int{
		"overall": out.Scores.Overall,
		"love":    out.Scores.Love,
		"career":  out.Scores.Career,
		"wealth":  out.Scores.Wealth,
	} {
		if v < 0 || v > 100 {
			t.Fatalf("%s score %d out of range", name, v)
		}
	}
	if out.Insight == "" {
		t.Fatalf("insight should not be empty")
	}
	if len(out.Themes) != 3 {
		t.Fatalf("expected 3 themes, got %d", len(out.Themes))
	}
}

func TestDailyStableWithinDay(t *testing.T) {
	agg := newAggregator(&stubSource{})
	birth := testBirth()

	morning, err := agg.Daily(context.Background(), birth, time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	evening, err := agg.Daily(context.Background(), birth, time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if morning.Scores != evening.Scores || morning.Insight != evening.Insight {
		t.Fatalf("daily horoscope changed within the same day")
	}
}

func TestDailyCacheHitSkipsRecompute(t *testing.T) {
	src := &stubSource{}
	mem := cache.NewMemoryCache()
	defer mem.Close()

	agg := newAggregator(src).WithCache(mem, time.Hour)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	first, err := agg.Daily(context.Background(), testBirth(), date)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	callsAfterFirst := src.positionCalls

	second, err := agg.Daily(context.Background(), testBirth(), date)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if src.positionCalls != callsAfterFirst {
		t.Fatalf("cache hit should not call the ephemeris again")
	}
	if first.Scores.Overall != second.Scores.Overall || first.Insight != second.Insight {
		t.Fatalf("cached result differs from computed result")
	}
}

func TestWeeklySharedAcrossISOWeek(t *testing.T) {
	birth := testBirth()

	// 2024-03-11 (Monday) and 2024-03-17 (Sunday) share ISO week 11. The
	// stub's Moon sits in different signs on those days, so any field
	// derived from the query day's transits would differ here. Separate
	// aggregators keep the second call from short-circuiting on the
	// week-keyed cache entry.
	mon, err := newAggregator(&stubSource{}).Weekly(context.Background(), birth, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	sun, err := newAggregator(&stubSource{}).Weekly(context.Background(), birth, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}

	if mon.Week != 11 || sun.Week != 11 {
		t.Fatalf("expected ISO week 11, got %d and %d", mon.Week, sun.Week)
	}
	if !mon.Date.Equal(sun.Date) {
		t.Fatalf("weekly date differs within one ISO week: %v vs %v", mon.Date, sun.Date)
	}
	if mon.Insight != sun.Insight {
		t.Fatalf("weekly insight differs within one ISO week")
	}
	if len(mon.Themes) != len(sun.Themes) {
		t.Fatalf("weekly theme counts differ: %d vs %d", len(mon.Themes), len(sun.Themes))
	}
	for i := range mon.Themes {
		if mon.Themes[i] != sun.Themes[i] {
			t.Fatalf("weekly theme %d differs: %q vs %q", i, mon.Themes[i], sun.Themes[i])
		}
	}
	if len(mon.Tags) != len(sun.Tags) {
		t.Fatalf("weekly tag counts differ: %d vs %d", len(mon.Tags), len(sun.Tags))
	}
	for i := range mon.Tags {
		if mon.Tags[i] != sun.Tags[i] {
			t.Fatalf("weekly tag %d differs: %q vs %q", i, mon.Tags[i], sun.Tags[i])
		}
	}

	// The Monday anchor also pins the weekly date to the week's first day.
	if want := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC); !mon.Date.Equal(want) {
		t.Fatalf("weekly date should anchor to Monday, got %v", mon.Date)
	}
}

func TestTransitAspectsDeterministic(t *testing.T) {
	agg := newAggregator(&stubSource{})
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	a, err := agg.TransitAspects(context.Background(), testBirth(), date)
	if err != nil {
		t.Fatalf("TransitAspects: %v", err)
	}
	b, err := agg.TransitAspects(context.Background(), testBirth(), date)
	if err != nil {
		t.Fatalf("TransitAspects: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("aspect counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("aspect %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestThemesForCount(t *testing.T) {
	agg := newAggregator(&stubSource{})
	themes, err := agg.ThemesFor(context.Background(), testBirth(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 5)
	if err != nil {
		t.Fatalf("ThemesFor: %v", err)
	}
	if len(themes) != 5 {
		t.Fatalf("expected 5 themes, got %d", len(themes))
	}
	seen := make(map[string]bool)
	for _, th := range themes {
		if seen[th] {
			t.Fatalf("duplicate theme %q", th)
		}
		seen[th] = true
	}
}
