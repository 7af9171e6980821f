package weather

import (
	"math"

	"wayfarer/models"
)

// Sample is one 3-hourly forecast entry as reported by the provider.
type Sample struct {
	Date          string // calendar date in the provider's local representation
	Hour          int    // local hour of the sample
	Temperature   float64
	Condition     string
	Description   string
	Icon          string
	Humidity      int
	WindSpeed     float64
	Precipitation float64
}

// Normalize collapses sub-day samples into one summary per calendar date,
// preserving the order dates first appear in the feed.
func Normalize(samples []Sample) []models.DailyWeather {
	var dates []string
	groups := make(map[string][]Sample)
	for _, s := range samples {
		if _, ok := groups[s.Date]; !ok {
			dates = append(dates, s.Date)
		}
		groups[s.Date] = append(groups[s.Date], s)
	}

	var daily []models.DailyWeather
	for _, date := range dates {
		group := groups[date]
		daily = append(daily, summarize(date, group))
	}
	return daily
}

func summarize(date string, group []Sample) models.DailyWeather {
	var sum float64
	minTemp := math.MaxFloat64
	maxTemp := -math.MaxFloat64
	wet := 0

	// Dominant condition: first condition to reach the maximum count,
	// scanning in sample order.
	counts := make(map[string]int)
	dominant := ""
	dominantCount := 0

	for _, s := range group {
		sum += s.Temperature
		if s.Temperature < minTemp {
			minTemp = s.Temperature
		}
		if s.Temperature > maxTemp {
			maxTemp = s.Temperature
		}
		if s.Precipitation > 0 {
			wet++
		}
		counts[s.Condition]++
		if counts[s.Condition] > dominantCount {
			dominantCount = counts[s.Condition]
			dominant = s.Condition
		}
	}

	rep := representative(group)

	return models.DailyWeather{
		Date:                date,
		Temperature:         round(sum / float64(len(group))),
		MinTemp:             round(minTemp),
		MaxTemp:             round(maxTemp),
		Condition:           dominant,
		Description:         rep.Description,
		Icon:                rep.Icon,
		IsRainy:             wet > 0,
		PrecipitationChance: round(float64(wet) / float64(len(group)) * 100),
	}
}

// representative picks the midday sample (local hour 11-14), falling back to
// the middle of the group.
func representative(group []Sample) Sample {
	for _, s := range group {
		if s.Hour >= 11 && s.Hour <= 14 {
			return s
		}
	}
	return group[len(group)/2]
}

var badConditions = map[string]bool{
	"Rain":         true,
	"Thunderstorm": true,
	"Snow":         true,
	"Extreme":      true,
}

// IsGoodForOutdoor reports whether a day is suitable for outdoor activities.
func IsGoodForOutdoor(d models.DailyWeather) bool {
	return !badConditions[d.Condition] && d.Temperature > 10
}

func round(f float64) int {
	return int(math.Round(f))
}
