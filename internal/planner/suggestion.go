package planner

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed suggestions.yaml
var suggestionsYAML []byte

// IntervalSuggestion is an advisory succession recommendation for one plant
// category. It is never enforced; the caller may pick any interval/count
// within the hard series bounds.
type IntervalSuggestion struct {
	MinDays          int `json:"min_days" yaml:"min_days"`
	MaxDays          int `json:"max_days" yaml:"max_days"`
	RecommendedDays  int `json:"recommended_days" yaml:"recommended_days"`
	RecommendedCount int `json:"recommended_count" yaml:"-"`
}

type suggestionEntry struct {
	MinDays           int `yaml:"min_days"`
	MaxDays           int `yaml:"max_days"`
	RecommendedDays   int `yaml:"recommended_days"`
	HarvestWindowDays int `yaml:"harvest_window_days"`
}

var suggestionTable = mustLoadSuggestions()

func mustLoadSuggestions() map[string]suggestionEntry {
	table := make(map[string]suggestionEntry)
	if err := yaml.Unmarshal(suggestionsYAML, &table); err != nil {
		panic(fmt.Sprintf("planner: malformed embedded suggestions.yaml: %v", err))
	}
	return table
}

// SuggestInterval returns the advisory interval and count for a plant
// category. The recommended count is the number of sowings that fit the
// category's harvest window at the recommended interval, clamped to the
// series bounds. Unknown or empty categories return (nil, false) and the
// caller must supply interval/count manually.
func SuggestInterval(category string) (*IntervalSuggestion, bool) {
	entry, ok := suggestionTable[category]
	if !ok || entry.RecommendedDays <= 0 {
		return nil, false
	}

	count := entry.HarvestWindowDays / entry.RecommendedDays
	if count < MinSeriesCount {
		count = MinSeriesCount
	}
	if count > MaxSeriesCount {
		count = MaxSeriesCount
	}

	return &IntervalSuggestion{
		MinDays:          entry.MinDays,
		MaxDays:          entry.MaxDays,
		RecommendedDays:  entry.RecommendedDays,
		RecommendedCount: count,
	}, true
}
