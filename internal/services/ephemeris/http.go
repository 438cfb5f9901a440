package ephemeris

import (
	"context"
	"fmt"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/domain/service"
	xhttp "AstroCore/pkg/http"
)

// HTTPSource queries a remote ephemeris service. Any transport, timeout or
// decode failure surfaces as models.ErrEphemerisUnavailable; partial payloads
// are rejected. It sits outside the offline determinism guarantee and is only
// selected explicitly via configuration.
type HTTPSource struct {
	baseURL string
	client  *xhttp.Client
}

// NewHTTPSource builds the remote adapter.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPSource{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

var _ service.EphemerisSource = (*HTTPSource)(nil)

type positionsReq struct {
	Instant time.Time `json:"instant"`
}

type positionResp struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Distance  float64 `json:"distance"`
	Speed     float64 `json:"speed"`
}

type housesReq struct {
	Instant   time.Time `json:"instant"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type housesResp struct {
	Ascendant float64   `json:"ascendant"`
	Midheaven float64   `json:"midheaven"`
	Cusps     []float64 `json:"cusps"`
}

func (s *HTTPSource) postJSON(ctx context.Context, path string, payload, dest interface{}) error {
	if s.client == nil || s.baseURL == "" {
		return fmt.Errorf("%w: http source not configured", models.ErrEphemerisUnavailable)
	}
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     s.baseURL + path,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("%w: post %s: %v", models.ErrEphemerisUnavailable, path, err)
	}
	return nil
}

func (s *HTTPSource) BodyPositions(ctx context.Context, instant time.Time) (map[models.BodyName]service.RawPosition, error) {
	var resp map[models.BodyName]positionResp
	if err := s.postJSON(ctx, "/positions", positionsReq{Instant: instant.UTC()}, &resp); err != nil {
		return nil, err
	}

	out := make(map[models.BodyName]service.RawPosition, len(models.BodyOrder))
	for _, name := range models.BodyOrder {
		p, ok := resp[name]
		if !ok {
			return nil, fmt.Errorf("%w: remote payload missing %s", models.ErrEphemerisUnavailable, name)
		}
		out[name] = service.RawPosition{
			Longitude: p.Longitude,
			Latitude:  p.Latitude,
			Distance:  p.Distance,
			Speed:     p.Speed,
		}
	}
	return out, nil
}

func (s *HTTPSource) HouseGeometry(ctx context.Context, instant time.Time, latitude, longitude float64) (service.HouseGeometry, error) {
	var resp housesResp
	req := housesReq{Instant: instant.UTC(), Latitude: latitude, Longitude: longitude}
	if err := s.postJSON(ctx, "/houses", req, &resp); err != nil {
		return service.HouseGeometry{}, err
	}
	if len(resp.Cusps) != 12 {
		return service.HouseGeometry{}, fmt.Errorf("%w: remote payload has %d cusps", models.ErrEphemerisUnavailable, len(resp.Cusps))
	}
	return service.HouseGeometry{
		Ascendant: resp.Ascendant,
		Midheaven: resp.Midheaven,
		Cusps:     resp.Cusps,
	}, nil
}
