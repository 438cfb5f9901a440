package models

// Requests for the astrology HTTP endpoints. Defined in domain for consistency and reuse.

// BirthRequest carries the birth moment and place over the wire.
type BirthRequest struct {
	BirthTime string  `json:"birth_time" validate:"required"` // RFC3339 or unix seconds
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Timezone  string  `json:"timezone" default:"UTC"`
	Location  string  `json:"location"`
}

type ChartRequest struct {
	Birth BirthRequest `json:"birth" validate:"required"`
}

type HoroscopeRequest struct {
	Birth BirthRequest `json:"birth" validate:"required"`
	Date  string       `json:"date" validate:"required"` // YYYY-MM-DD
}

type ThemesRequest struct {
	Birth BirthRequest `json:"birth" validate:"required"`
	Date  string       `json:"date" validate:"required"`
	Count int          `json:"count" default:"3" validate:"gte=1,lte=5"`
}

type AspectsRequest struct {
	Birth BirthRequest `json:"birth" validate:"required"`
	Date  string       `json:"date" validate:"required"`
}

type TransitsRequest struct {
	Date string `query:"date" json:"date"`
}
