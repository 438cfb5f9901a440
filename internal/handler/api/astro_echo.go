package api

import (
	"errors"
	"fmt"
	"time"

	models "AstroCore/internal/domain/models"
	"AstroCore/internal/usecase"
	xhttp "AstroCore/pkg/http"
	xlogger "AstroCore/pkg/logger"
	"AstroCore/pkg/util"

	"github.com/labstack/echo/v4"
)

// AstroEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type AstroEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.HoroscopeAggregator
}

func NewAstroEchoHandler(logger *xlogger.Logger, agg *usecase.HoroscopeAggregator) *AstroEchoHandler {
	return &AstroEchoHandler{logger: logger, agg: agg}
}

func (h *AstroEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/chart", h.Chart)
	g.POST("/horoscope/daily", h.Daily)
	g.POST("/horoscope/weekly", h.Weekly)
	g.POST("/cycles", h.Cycles)
	g.POST("/aspects", h.Aspects)
	g.POST("/themes", h.Themes)
	g.GET("/transits", h.Transits)
}

func (h *AstroEchoHandler) Chart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	birth, err := birthFromRequest(req.Birth)
	if err != nil {
		return h.fail(c, "chart", err)
	}

	res, err := h.agg.BuildChart(c.Request().Context(), birth)
	if err != nil {
		return h.fail(c, "chart", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AstroEchoHandler) Daily(c echo.Context) error {
	req := &models.HoroscopeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	birth, date, err := birthAndDate(req.Birth, req.Date)
	if err != nil {
		return h.fail(c, "daily", err)
	}

	res, err := h.agg.Daily(c.Request().Context(), birth, date)
	if err != nil {
		return h.fail(c, "daily", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AstroEchoHandler) Weekly(c echo.Context) error {
	req := &models.HoroscopeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	birth, date, err := birthAndDate(req.Birth, req.Date)
	if err != nil {
		return h.fail(c, "weekly", err)
	}

	res, err := h.agg.Weekly(c.Request().Context(), birth, date)
	if err != nil {
		return h.fail(c, "weekly", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AstroEchoHandler) Cycles(c echo.Context) error {
	req := &models.HoroscopeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	birth, date, err := birthAndDate(req.Birth, req.Date)
	if err != nil {
		return h.fail(c, "cycles", err)
	}

	res, err := h.agg.CyclesFor(c.Request().Context(), birth, date)
	if err != nil {
		return h.fail(c, "cycles", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AstroEchoHandler) Aspects(c echo.Context) error {
	req := &models.AspectsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	birth, date, err := birthAndDate(req.Birth, req.Date)
	if err != nil {
		return h.fail(c, "aspects", err)
	}

	res, err := h.agg.TransitAspects(c.Request().Context(), birth, date)
	if err != nil {
		return h.fail(c, "aspects", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AstroEchoHandler) Themes(c echo.Context) error {
	req := &models.ThemesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	birth, date, err := birthAndDate(req.Birth, req.Date)
	if err != nil {
		return h.fail(c, "themes", err)
	}

	res, err := h.agg.ThemesFor(c.Request().Context(), birth, date, req.Count)
	if err != nil {
		return h.fail(c, "themes", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AstroEchoHandler) Transits(c echo.Context) error {
	req := &models.TransitsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	// Without a date the snapshot is for today.
	date := time.Now().UTC()
	if req.Date != "" {
		parsed, ok := util.ParseDate(req.Date)
		if !ok {
			return h.fail(c, "transits", fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrInvalidBirthData))
		}
		date = parsed
	}

	res, err := h.agg.Transits(c.Request().Context(), date)
	if err != nil {
		return h.fail(c, "transits", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AstroEchoHandler) fail(c echo.Context, op string, err error) error {
	h.logger.Error("astro usecase error", xlogger.String("op", op), xlogger.Error(err))
	return xhttp.AppErrorResponse(c, astroError(err))
}

// astroError maps domain errors onto transport errors. Unknown errors stay 500
// so internals never leak.
func astroError(err error) *xhttp.AppError {
	switch {
	case errors.Is(err, models.ErrInvalidBirthData), errors.Is(err, models.ErrInvalidLongitude):
		return xhttp.BadRequestError(err.Error()).WithError(err)
	case errors.Is(err, models.ErrUndefinedAscendant):
		return xhttp.UnprocessableError(err.Error()).WithError(err)
	case errors.Is(err, models.ErrIncompleteEphemeris), errors.Is(err, models.ErrEphemerisUnavailable):
		return xhttp.ServiceUnavailableError(err.Error()).WithError(err)
	default:
		return xhttp.InternalError("internal error").WithError(err)
	}
}

func birthFromRequest(req models.BirthRequest) (models.BirthData, error) {
	t, ok := util.ParseTime(req.BirthTime)
	if !ok {
		return models.BirthData{}, fmt.Errorf("%w: birth_time must be RFC3339 or unix seconds", models.ErrInvalidBirthData)
	}
	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return models.BirthData{}, fmt.Errorf("%w: unknown timezone %q", models.ErrInvalidBirthData, tz)
	}
	return models.BirthData{
		Instant:   t.In(loc),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  tz,
		Location:  req.Location,
	}, nil
}

func birthAndDate(breq models.BirthRequest, dateStr string) (models.BirthData, time.Time, error) {
	birth, err := birthFromRequest(breq)
	if err != nil {
		return models.BirthData{}, time.Time{}, err
	}
	date, ok := util.ParseDate(dateStr)
	if !ok {
		return models.BirthData{}, time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrInvalidBirthData)
	}
	return birth, date, nil
}
