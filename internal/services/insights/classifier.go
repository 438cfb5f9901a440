package insights

import (
	"sort"
	"strings"
)

// tagKeywords drives the icon/category classifier. Purely classificatory: it
// maps generated text to tags by keyword matching and never alters the text.
var tagKeywords = map[string][]string{
	"love":       {"heart", "affection", "adore", "bond", "tender", "relationship", "warmth"},
	"career":     {"work", "deadline", "reputation", "authority", "task", "collaborat", "craft"},
	"money":      {"money", "expense", "price", "account", "budget", "profit", "subscription", "ledger"},
	"growth":     {"grow", "compound", "study", "learn", "horizon", "opportunit", "plant"},
	"energy":     {"drive", "energy", "momentum", "push", "engine", "lifting"},
	"caution":    {"resist", "friction", "postpon", "worry", "fear", "obstacle", "avoid"},
	"reflection": {"rest", "pause", "quiet", "private", "tidy", "slow", "patien"},
}

// Classify tags a generated insight with its matching icon categories. Output
// is sorted for stable presentation and always non-nil.
func Classify(text string) []string {
	lower := strings.ToLower(text)
	tags := make([]string, 0, 4)
	for tag, words := range tagKeywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				tags = append(tags, tag)
				break
			}
		}
	}
	sort.Strings(tags)
	return tags
}
