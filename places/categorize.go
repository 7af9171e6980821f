package places

import "wayfarer/models"

// Time-of-day buckets
const (
	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"
)

// Static taxonomy tables mapping provider place types to schedule buckets.
// Checked morning first, then evening, then afternoon.
var (
	morningTypes = map[string]bool{
		"museum":              true,
		"tourist_attraction":  true,
		"park":                true,
		"zoo":                 true,
		"aquarium":            true,
		"art_gallery":         true,
		"historical_landmark": true,
	}

	eveningTypes = map[string]bool{
		"night_club":       true,
		"bar":              true,
		"movie_theater":    true,
		"casino":           true,
		"bowling_alley":    true,
		"amusement_center": true,
	}

	afternoonTypes = map[string]bool{
		"shopping_mall":  true,
		"store":          true,
		"amusement_park": true,
		"spa":            true,
		"cafe":           true,
		"restaurant":     true,
	}
)

var cycle = []string{Morning, Afternoon, Evening}

// CategorizeByTime assigns each place exactly one time-of-day bucket from
// its provider types. Places matching no taxonomy at all are spread across
// the buckets by list position so they do not pile up in one slot.
func CategorizeByTime(places []models.Place) []models.Place {
	out := make([]models.Place, len(places))
	for i, p := range places {
		p.TimeOfDay = bucketFor(p.Types, i)
		out[i] = p
	}
	return out
}

func bucketFor(types []string, index int) string {
	if anyType(types, morningTypes) {
		return Morning
	}
	if anyType(types, eveningTypes) {
		return Evening
	}
	if anyType(types, afternoonTypes) {
		return Afternoon
	}
	return cycle[index%3]
}

func anyType(types []string, table map[string]bool) bool {
	for _, t := range types {
		if table[t] {
			return true
		}
	}
	return false
}
