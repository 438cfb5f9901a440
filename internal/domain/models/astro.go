package models

import (
	"fmt"
	"math"
)

// BodyName identifies one of the ten tracked celestial bodies.
type BodyName string

const (
	BodySun     BodyName = "Sun"
	BodyMoon    BodyName = "Moon"
	BodyMercury BodyName = "Mercury"
	BodyVenus   BodyName = "Venus"
	BodyMars    BodyName = "Mars"
	BodyJupiter BodyName = "Jupiter"
	BodySaturn  BodyName = "Saturn"
	BodyUranus  BodyName = "Uranus"
	BodyNeptune BodyName = "Neptune"
	BodyPluto   BodyName = "Pluto"
)

// BodyOrder is the canonical ordering of the ten bodies. Every chart and
// transit set carries exactly these, in this order.
var BodyOrder = []BodyName{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
}

var bodySymbols = map[BodyName]string{
	BodySun:     "☉",
	BodyMoon:    "☽",
	BodyMercury: "☿",
	BodyVenus:   "♀",
	BodyMars:    "♂",
	BodyJupiter: "♃",
	BodySaturn:  "♄",
	BodyUranus:  "♅",
	BodyNeptune: "♆",
	BodyPluto:   "♇",
}

// Symbol returns the astrological glyph for the body.
func (n BodyName) Symbol() string { return bodySymbols[n] }

// CelestialBody is a single body position in ecliptic coordinates.
type CelestialBody struct {
	Name      BodyName       `json:"name"`
	Symbol    string         `json:"symbol"`
	Longitude float64        `json:"longitude"` // ecliptic, [0,360)
	Latitude  float64        `json:"latitude"`
	Distance  float64        `json:"distance"` // AU (Moon: Earth radii scale irrelevant to callers)
	Speed     float64        `json:"speed"`    // deg/day along the ecliptic
	Position  ZodiacPosition `json:"position"`
}

// Retrograde reports whether the body moves backward through the zodiac.
func (b CelestialBody) Retrograde() bool { return b.Speed < 0 }

// Element groups three signs each.
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// ZodiacSign is one of the twelve signs, indexed 0 (Aries) through 11 (Pisces).
type ZodiacSign int

const (
	Aries ZodiacSign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signSymbols = [12]string{
	"♈", "♉", "♊", "♋", "♌", "♍",
	"♎", "♏", "♐", "♑", "♒", "♓",
}

var signElements = [12]Element{
	Fire, Earth, Air, Water, Fire, Earth,
	Air, Water, Fire, Earth, Air, Water,
}

func (s ZodiacSign) String() string {
	if s < 0 || s > 11 {
		return "Unknown"
	}
	return signNames[s]
}

// Symbol returns the sign glyph.
func (s ZodiacSign) Symbol() string {
	if s < 0 || s > 11 {
		return ""
	}
	return signSymbols[s]
}

// Element returns the sign's classical element.
func (s ZodiacSign) Element() Element {
	if s < 0 || s > 11 {
		return ""
	}
	return signElements[s]
}

// MarshalText makes signs serialize by name.
func (s ZodiacSign) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a sign name, the inverse of MarshalText.
func (s *ZodiacSign) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range signNames {
		if n == name {
			*s = ZodiacSign(i)
			return nil
		}
	}
	return fmt.Errorf("unknown zodiac sign %q", name)
}

// ZodiacPosition locates a longitude within a sign.
type ZodiacPosition struct {
	Sign   ZodiacSign `json:"sign"`
	Degree int        `json:"degree"` // 0-29 within the sign
	Minute int        `json:"minute"` // 0-59
}

// House is one of the twelve chart houses.
type House struct {
	Number int     `json:"number"` // 1-12
	Cusp   float64 `json:"cusp"`   // ecliptic longitude, [0,360)
}

// BirthChart is the fully assembled natal chart. It is a pure value derived
// from BirthData plus ephemeris output and is never mutated after Build.
type BirthChart struct {
	Birth     BirthData       `json:"birth"`
	Bodies    []CelestialBody `json:"bodies"` // ten, in BodyOrder
	Ascendant float64         `json:"ascendant"`
	Midheaven float64         `json:"midheaven"`
	Houses    []House         `json:"houses"` // twelve, house 1 cusp == ascendant
}

// Body returns the named body from the chart.
func (c BirthChart) Body(name BodyName) (CelestialBody, bool) {
	for _, b := range c.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return CelestialBody{}, false
}

// SunSign is the chart's Sun sign.
func (c BirthChart) SunSign() ZodiacSign {
	b, _ := c.Body(BodySun)
	return b.Position.Sign
}

// MoonSign is the chart's Moon sign.
func (c BirthChart) MoonSign() ZodiacSign {
	b, _ := c.Body(BodyMoon)
	return b.Position.Sign
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
