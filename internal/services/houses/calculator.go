package houses

import (
	"fmt"
	"math"
	"time"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/services/zodiac"
)

// PolarLatitudeLimit is the absolute latitude beyond which the ascendant is
// not well defined (the ecliptic may never cross the horizon).
const PolarLatitudeLimit = 66.5

// SystemEqual divides the ecliptic into twelve 30-degree houses starting at
// the ascendant. It is the only supported house system.
const SystemEqual = "equal"

const degToRad = math.Pi / 180

// Calculator computes ascendant, midheaven and the twelve house cusps.
type Calculator struct {
	system string
}

// New returns a Calculator for the named house system.
func New(system string) (*Calculator, error) {
	if system != SystemEqual {
		return nil, fmt.Errorf("unsupported house system %q", system)
	}
	return &Calculator{system: system}, nil
}

// System reports the configured house system.
func (c *Calculator) System() string { return c.system }

// Houses computes the chart angles for the given instant and observer
// coordinates. Latitudes at or beyond PolarLatitudeLimit fail with
// models.ErrUndefinedAscendant instead of producing a NaN-derived cusp.
func (c *Calculator) Houses(instant time.Time, latitude, longitude float64) (asc, mc float64, hs []models.House, err error) {
	if !models.IsFinite(latitude) || !models.IsFinite(longitude) {
		return 0, 0, nil, fmt.Errorf("%w: non-finite observer coordinates", models.ErrInvalidBirthData)
	}
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return 0, 0, nil, fmt.Errorf("%w: coordinates (%v,%v) out of range", models.ErrInvalidBirthData, latitude, longitude)
	}
	if math.Abs(latitude) >= PolarLatitudeLimit {
		return 0, 0, nil, fmt.Errorf("%w: |latitude| %.2f >= %.1f", models.ErrUndefinedAscendant, math.Abs(latitude), PolarLatitudeLimit)
	}

	lst := LocalSiderealTime(instant, longitude)
	eps := Obliquity(instant)

	mc = Midheaven(lst, eps)
	asc = Ascendant(lst, eps, latitude)

	hs = make([]models.House, 12)
	for i := 0; i < 12; i++ {
		hs[i] = models.House{
			Number: i + 1,
			Cusp:   zodiac.Normalize(asc + float64(i)*30),
		}
	}
	return asc, mc, hs, nil
}

// JulianDay converts an instant to the astronomical Julian day number.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y, m, d := t.Date()
	month := int(m)
	if month <= 2 {
		y--
		month += 12
	}
	a := y / 100
	b := 2 - a + a/4
	dayFrac := float64(d) +
		(float64(t.Hour())+float64(t.Minute())/60+float64(t.Second())/3600)/24
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		dayFrac + float64(b) - 1524.5
}

// GreenwichSiderealTime returns GMST in degrees, [0,360).
func GreenwichSiderealTime(t time.Time) float64 {
	jd := JulianDay(t)
	d := jd - 2451545.0
	tc := d / 36525
	gmst := 280.46061837 + 360.98564736629*d + 0.000387933*tc*tc - tc*tc*tc/38710000
	return zodiac.Normalize(gmst)
}

// LocalSiderealTime returns LST in degrees for an observer at the given
// east-positive longitude.
func LocalSiderealTime(t time.Time, longitude float64) float64 {
	return zodiac.Normalize(GreenwichSiderealTime(t) + longitude)
}

// Obliquity returns the mean obliquity of the ecliptic in degrees.
func Obliquity(t time.Time) float64 {
	tc := (JulianDay(t) - 2451545.0) / 36525
	return 23.4392911 - 0.0130042*tc - 1.64e-7*tc*tc
}

// Midheaven returns the ecliptic longitude culminating on the meridian for the
// given local sidereal time (degrees) and obliquity (degrees).
func Midheaven(lst, eps float64) float64 {
	ramc := lst * degToRad
	e := eps * degToRad
	mc := math.Atan2(math.Sin(ramc), math.Cos(ramc)*math.Cos(e))
	return zodiac.Normalize(mc / degToRad)
}

// Ascendant returns the ecliptic degree rising on the eastern horizon.
func Ascendant(lst, eps, latitude float64) float64 {
	ramc := lst * degToRad
	e := eps * degToRad
	phi := latitude * degToRad
	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(e) + math.Tan(phi)*math.Sin(e)))
	return zodiac.Normalize(asc / degToRad)
}
