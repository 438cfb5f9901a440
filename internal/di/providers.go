package di

import (
	"fmt"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/repository"
	domsvc "AstroCore/internal/domain/service"
	"AstroCore/internal/handler/api"
	"AstroCore/internal/services/ephemeris"
	"AstroCore/internal/services/houses"
	"AstroCore/internal/services/insights"
	"AstroCore/internal/services/scoring"
	"AstroCore/internal/services/transits"
	"AstroCore/internal/usecase"
	"AstroCore/pkg/cache"
	"AstroCore/pkg/config"
	xhttp "AstroCore/pkg/http"
	applogger "AstroCore/pkg/logger"
	"AstroCore/pkg/metrics"
	"AstroCore/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "json"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return applogger.New(lc)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideHousesCalculator creates the house calculator from config.
func ProvideHousesCalculator(cfg *config.Config) (*houses.Calculator, error) {
	system := cfg.Houses.System
	if system == "" {
		system = houses.SystemEqual
	}
	return houses.New(system)
}

// ProvideEphemerisSource selects the ephemeris backend from config.
func ProvideEphemerisSource(cfg *config.Config, hc *houses.Calculator) (domsvc.EphemerisSource, error) {
	switch cfg.Ephemeris.Source {
	case "http":
		timeout := cfg.Ephemeris.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		return ephemeris.NewHTTPSource(cfg.Ephemeris.ServiceURL, timeout), nil
	case "local", "":
		minYear := cfg.Ephemeris.MinYear
		maxYear := cfg.Ephemeris.MaxYear
		if minYear == 0 {
			minYear = models.MinBirthYear
		}
		if maxYear == 0 {
			maxYear = models.MaxBirthYear
		}
		return ephemeris.NewLocalSource(hc, minYear, maxYear), nil
	default:
		return nil, fmt.Errorf("unknown ephemeris source %q", cfg.Ephemeris.Source)
	}
}

// ProvideTransitCalculator creates the transit position calculator.
func ProvideTransitCalculator(src domsvc.EphemerisSource) *transits.Calculator {
	return transits.New(src)
}

// ProvideScoringEngine creates the deterministic scoring engine.
func ProvideScoringEngine() *scoring.Engine {
	return scoring.New()
}

// ProvideInsightGenerator creates the insight text generator.
func ProvideInsightGenerator() *insights.Generator {
	return insights.New()
}

// ProvideCache creates the horoscope result cache. With Redis enabled the
// cache is layered (in-process L1, Redis L2), otherwise memory only.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Horoscope.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	rc, err := cache.NewRedisCache(
		cache.WithRedisAddr(cfg.Horoscope.Redis.Addr),
		cache.WithRedisPassword(cfg.Horoscope.Redis.Password),
		cache.WithRedisDB(cfg.Horoscope.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideAggregator creates the horoscope aggregator use case.
func ProvideAggregator(
	src domsvc.EphemerisSource,
	tc *transits.Calculator,
	se *scoring.Engine,
	ig *insights.Generator,
	m repository.Metrics,
	cacheSvc cache.Service,
	cfg *config.Config,
) *usecase.HoroscopeAggregator {
	ttl := cfg.Horoscope.CacheTTL
	if ttl == 0 {
		ttl = time.Hour
	}
	return usecase.NewHoroscopeAggregator(src, tc, se, ig, m).WithCache(cacheSvc, ttl)
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(logger *applogger.Logger, agg *usecase.HoroscopeAggregator) xhttp.Handler {
	return api.NewAstroEchoHandler(logger, agg)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler, cacheSvc cache.Service) *server.App {
	return server.New(cfg, logger, handler, cacheSvc)
}
