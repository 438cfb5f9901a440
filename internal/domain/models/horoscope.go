package models

import "time"

// HoroscopeScores are the four bounded category scores for one target day.
// All values are clamped to [0,100].
type HoroscopeScores struct {
	Date    time.Time `json:"date"`
	Overall int       `json:"overall"`
	Love    int       `json:"love"`
	Career  int       `json:"career"`
	Wealth  int       `json:"wealth"`
}

// Influence categorizes how a cycle tends to land.
type Influence string

const (
	InfluencePositive       Influence = "positive"
	InfluenceChallenging    Influence = "challenging"
	InfluenceTransformative Influence = "transformative"
	InfluenceNeutral        Influence = "neutral"
)

// AstrologicalCycle describes an active slow-planet transit against the natal chart.
type AstrologicalCycle struct {
	Title       string    `json:"title"`
	AspectLabel string    `json:"aspect_label"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Influence   Influence `json:"influence"`
}

// DailyHoroscope bundles everything the daily endpoint returns.
type DailyHoroscope struct {
	Date     time.Time       `json:"date"`
	Scores   HoroscopeScores `json:"scores"`
	Insight  string          `json:"insight"`
	Themes   []string        `json:"themes"`
	Tags     []string        `json:"tags"`
	MoonSign ZodiacSign      `json:"moon_sign"`
}

// WeeklyHoroscope is the week-bucket variant of the daily result.
type WeeklyHoroscope struct {
	Date    time.Time `json:"date"`
	Week    int       `json:"week"`
	Insight string    `json:"insight"`
	Themes  []string  `json:"themes"`
	Tags    []string  `json:"tags"`
}
