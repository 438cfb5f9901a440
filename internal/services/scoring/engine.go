package scoring

import (
	"fmt"
	"hash/fnv"
	"time"

	"AstroCore/internal/domain/models"
)

// Engine derives the four bounded horoscope scores. It is a pure function of
// (chart identity, date): no wall clock, no randomness, no I/O. Identical
// inputs yield bit-identical output on any device, which is the product's
// central guarantee.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Salts decorrelate the four score streams derived from one chart/date pair.
const (
	saltOverall = "overall"
	saltLove    = "love"
	saltCareer  = "career"
	saltWealth  = "wealth"
)

// Seed combines the chart's Sun and Moon signs with the date components into
// a stable 64-bit value. Only the calendar day matters; time of day within the
// date is deliberately ignored so a day's result never shifts intraday.
func Seed(sun, moon models.ZodiacSign, date time.Time, salt string) uint64 {
	date = date.UTC()
	isoYear, isoWeek := date.ISOWeek()
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%d|%d|%d|%d|%s",
		sun, moon, date.Year(), date.YearDay(), isoYear, isoWeek, salt)
	return h.Sum64()
}

// Scores computes the day's category scores for the chart. Total over a valid
// chart; it cannot fail.
func (e *Engine) Scores(c models.BirthChart, date time.Time) models.HoroscopeScores {
	sun, moon := c.SunSign(), c.MoonSign()
	return models.HoroscopeScores{
		Date:    date.UTC().Truncate(24 * time.Hour),
		Overall: scoreFrom(Seed(sun, moon, date, saltOverall)),
		Love:    scoreFrom(Seed(sun, moon, date, saltLove)),
		Career:  scoreFrom(Seed(sun, moon, date, saltCareer)),
		Wealth:  scoreFrom(Seed(sun, moon, date, saltWealth)),
	}
}

// scoreFrom maps a seed into [0,100]. Two independent draws are blended so
// extreme values are rarer than midrange ones, then clamped.
func scoreFrom(seed uint64) int {
	a := int(seed % 101)
	b := int((seed / 101) % 101)
	return clamp((a+b)/2, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
