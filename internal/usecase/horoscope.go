package usecase

import (
	"context"
	"fmt"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/repository"
	"AstroCore/internal/domain/service"
	"AstroCore/internal/services/aspects"
	"AstroCore/internal/services/chart"
	"AstroCore/internal/services/insights"
	"AstroCore/internal/services/scoring"
	"AstroCore/internal/services/transits"
	"AstroCore/pkg/cache"
)

// transitHour fixes the instant within a target day at which transit positions
// are sampled. Pinning it keeps "today's horoscope" identical across the whole
// day and across devices.
const transitHour = 12

// HoroscopeAggregator orchestrates the engines into user-facing results.
// Charts are recomputed from BirthData on every request; the only caching is
// an optional read-through layer over finished results, keyed by the birth
// fingerprint and day. Last-write-wins on the cache is safe because every
// value is deterministic.
type HoroscopeAggregator struct {
	eph      service.EphemerisSource
	transits *transits.Calculator
	scoring  *scoring.Engine
	insights *insights.Generator
	cache    cache.Service
	cacheTTL time.Duration
	metrics  repository.Metrics
}

func NewHoroscopeAggregator(
	eph service.EphemerisSource,
	tc *transits.Calculator,
	se *scoring.Engine,
	ig *insights.Generator,
	metrics repository.Metrics,
) *HoroscopeAggregator {
	if metrics == nil {
		metrics = repository.NoopMetrics{}
	}
	return &HoroscopeAggregator{
		eph:      eph,
		transits: tc,
		scoring:  se,
		insights: ig,
		metrics:  metrics,
	}
}

// WithCache attaches the optional result cache.
func (a *HoroscopeAggregator) WithCache(c cache.Service, ttl time.Duration) *HoroscopeAggregator {
	a.cache = c
	a.cacheTTL = ttl
	return a
}

// BuildChart validates the birth data and assembles the natal chart.
func (a *HoroscopeAggregator) BuildChart(ctx context.Context, birth models.BirthData) (models.BirthChart, error) {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("build_chart", time.Since(start).Seconds()) }()

	if err := birth.Validate(); err != nil {
		a.metrics.RecordError("invalid_birth_data")
		return models.BirthChart{}, err
	}

	raw, err := a.eph.BodyPositions(ctx, birth.Instant)
	if err != nil {
		a.metrics.RecordError("ephemeris")
		return models.BirthChart{}, err
	}
	geo, err := a.eph.HouseGeometry(ctx, birth.Instant, birth.Latitude, birth.Longitude)
	if err != nil {
		a.metrics.RecordError("house_geometry")
		return models.BirthChart{}, err
	}

	c, err := chart.Build(birth, raw, geo)
	if err != nil {
		a.metrics.RecordError("chart_build")
		return models.BirthChart{}, err
	}
	a.metrics.RecordChartBuilt()
	return c, nil
}

// Daily computes the full daily horoscope for the birth data and target day.
func (a *HoroscopeAggregator) Daily(ctx context.Context, birth models.BirthData, date time.Time) (models.DailyHoroscope, error) {
	day := transitInstant(date)
	key := cache.GenerateKeyWithParams("horoscope:daily", birth.Fingerprint(), dayKey(date))

	var cached models.DailyHoroscope
	if a.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	c, err := a.BuildChart(ctx, birth)
	if err != nil {
		return models.DailyHoroscope{}, err
	}
	tr, err := a.transits.PositionsAt(ctx, day)
	if err != nil {
		return models.DailyHoroscope{}, err
	}

	insight := a.insights.Daily(c, tr, date)
	out := models.DailyHoroscope{
		Date:     day.Truncate(24 * time.Hour),
		Scores:   a.scoring.Scores(c, date),
		Insight:  insight,
		Themes:   a.insights.Themes(c, tr, 3),
		Tags:     insights.Classify(insight),
		MoonSign: moonSign(tr),
	}
	a.metrics.RecordHoroscope("daily")
	a.cacheSet(ctx, key, out)
	return out, nil
}

// Weekly computes the week-bucket horoscope for the ISO week containing date.
// Every field derives from the week's Monday anchor, never from the query day,
// so all days of one ISO week share one payload and the week-keyed cache can
// never be populated with day-dependent content.
func (a *HoroscopeAggregator) Weekly(ctx context.Context, birth models.BirthData, date time.Time) (models.WeeklyHoroscope, error) {
	anchor := weekStart(date)
	_, week := date.UTC().ISOWeek()
	key := cache.GenerateKeyWithParams("horoscope:weekly", birth.Fingerprint(), weekKey(date))

	var cached models.WeeklyHoroscope
	if a.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	c, err := a.BuildChart(ctx, birth)
	if err != nil {
		return models.WeeklyHoroscope{}, err
	}
	tr, err := a.transits.PositionsAt(ctx, transitInstant(anchor))
	if err != nil {
		return models.WeeklyHoroscope{}, err
	}

	insight := a.insights.Weekly(c, tr, date)
	out := models.WeeklyHoroscope{
		Date:    transitInstant(anchor).Truncate(24 * time.Hour),
		Week:    week,
		Insight: insight,
		Themes:  a.insights.Themes(c, tr, 3),
		Tags:    insights.Classify(insight),
	}
	a.metrics.RecordHoroscope("weekly")
	a.cacheSet(ctx, key, out)
	return out, nil
}

// CyclesFor derives the active astrological cycles at the target date.
func (a *HoroscopeAggregator) CyclesFor(ctx context.Context, birth models.BirthData, date time.Time) ([]models.AstrologicalCycle, error) {
	c, err := a.BuildChart(ctx, birth)
	if err != nil {
		return nil, err
	}
	tr, err := a.transits.PositionsAt(ctx, transitInstant(date))
	if err != nil {
		return nil, err
	}
	a.metrics.RecordHoroscope("cycles")
	return a.insights.Cycles(c, date, tr), nil
}

// ThemesFor returns count themes active for the chart on the target date.
func (a *HoroscopeAggregator) ThemesFor(ctx context.Context, birth models.BirthData, date time.Time, count int) ([]string, error) {
	c, err := a.BuildChart(ctx, birth)
	if err != nil {
		return nil, err
	}
	tr, err := a.transits.PositionsAt(ctx, transitInstant(date))
	if err != nil {
		return nil, err
	}
	return a.insights.Themes(c, tr, count), nil
}

// TransitAspects classifies the natal chart against the date's transits.
func (a *HoroscopeAggregator) TransitAspects(ctx context.Context, birth models.BirthData, date time.Time) ([]models.Aspect, error) {
	c, err := a.BuildChart(ctx, birth)
	if err != nil {
		return nil, err
	}
	tr, err := a.transits.PositionsAt(ctx, transitInstant(date))
	if err != nil {
		return nil, err
	}
	return aspects.Between(c.Bodies, tr), nil
}

// Transits returns the bare transit positions for a date, for "Moon in X"
// style labeling with no chart involved.
func (a *HoroscopeAggregator) Transits(ctx context.Context, date time.Time) ([]models.CelestialBody, error) {
	return a.transits.PositionsAt(ctx, transitInstant(date))
}

func (a *HoroscopeAggregator) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if a.cache == nil {
		return false
	}
	if err := a.cache.Get(ctx, key, dest); err != nil {
		a.metrics.RecordCache(false)
		return false
	}
	a.metrics.RecordCache(true)
	return true
}

func (a *HoroscopeAggregator) cacheSet(ctx context.Context, key string, value interface{}) {
	if a.cache == nil {
		return
	}
	// Failures here are invisible to correctness: the value is recomputable.
	_ = a.cache.Set(ctx, key, value, a.cacheTTL)
}

// transitInstant pins a target date to its sampling instant (12:00 UTC).
func transitInstant(date time.Time) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), transitHour, 0, 0, 0, time.UTC)
}

func dayKey(date time.Time) string {
	return date.UTC().Format("2006-01-02")
}

func weekKey(date time.Time) string {
	y, w := date.UTC().ISOWeek()
	return fmt.Sprintf("%04d-w%02d", y, w)
}

// weekStart returns the Monday of the ISO week containing date, at midnight UTC.
func weekStart(date time.Time) time.Time {
	d := date.UTC()
	offset := (int(d.Weekday()) + 6) % 7
	d = d.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func moonSign(bodies []models.CelestialBody) models.ZodiacSign {
	for _, b := range bodies {
		if b.Name == models.BodyMoon {
			return b.Position.Sign
		}
	}
	return 0
}
