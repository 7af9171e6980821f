package trip

import (
	"sort"
	"time"

	"wayfarer/models"
	"wayfarer/places"
	"wayfarer/weather"
)

// PlacesPerDay is the daily schedule target: two places per time-of-day
// bucket.
const PlacesPerDay = 6

const perBucket = 2

// indoorTypes restricts candidates on bad-weather days.
var indoorTypes = map[string]bool{
	"museum":        true,
	"shopping_mall": true,
	"restaurant":    true,
	"art_gallery":   true,
	"movie_theater": true,
}

// Assemble builds the day-by-day schedule from the pooled, categorized
// places and the daily forecast. A place is consumed by the first day that
// schedules it and never repeats on a later day. The number of emitted days
// is clamped to the forecast actually available.
func Assemble(start time.Time, days int, pool []models.Place, forecast []models.DailyWeather) []models.ItineraryDay {
	unique := dedupeByID(pool)
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Rating > unique[j].Rating
	})

	if len(forecast) < days {
		days = len(forecast)
	}

	used := make(map[string]bool)
	itineraryDays := make([]models.ItineraryDay, 0, days)

	for i := 0; i < days; i++ {
		dayWeather := forecast[i]
		goodWeather := weather.IsGoodForOutdoor(dayWeather)

		var candidates []models.Place
		for _, p := range unique {
			if used[p.PlaceID] {
				continue
			}
			if !goodWeather && !isIndoor(p.Types) {
				continue
			}
			candidates = append(candidates, p)
		}

		dayPlaces := pickForDay(candidates)

		for _, p := range dayPlaces {
			used[p.PlaceID] = true
		}

		itineraryDays = append(itineraryDays, models.ItineraryDay{
			Day:     i + 1,
			Date:    start.AddDate(0, 0, i).Format(dateLayout),
			Weather: dayWeather,
			Places:  formatPlaces(dayPlaces),
		})
	}

	return itineraryDays
}

// pickForDay fills the schedule in priority order: up to two morning, two
// afternoon, two evening places, then tops the day up from whatever is left,
// keeping rating order throughout.
func pickForDay(candidates []models.Place) []models.Place {
	var selected []models.Place
	taken := make(map[string]bool)

	for _, bucket := range []string{places.Morning, places.Afternoon, places.Evening} {
		count := 0
		for _, p := range candidates {
			if count == perBucket {
				break
			}
			if p.TimeOfDay == bucket {
				selected = append(selected, p)
				taken[p.PlaceID] = true
				count++
			}
		}
	}

	for _, p := range candidates {
		if len(selected) == PlacesPerDay {
			break
		}
		if !taken[p.PlaceID] {
			selected = append(selected, p)
			taken[p.PlaceID] = true
		}
	}

	if len(selected) > PlacesPerDay {
		selected = selected[:PlacesPerDay]
	}
	return selected
}

// dedupeByID keeps the first occurrence of each provider place id.
func dedupeByID(pool []models.Place) []models.Place {
	seen := make(map[string]bool, len(pool))
	unique := make([]models.Place, 0, len(pool))
	for _, p := range pool {
		if seen[p.PlaceID] {
			continue
		}
		seen[p.PlaceID] = true
		unique = append(unique, p)
	}
	return unique
}

func isIndoor(types []string) bool {
	for _, t := range types {
		if indoorTypes[t] {
			return true
		}
	}
	return false
}

func formatPlaces(dayPlaces []models.Place) []models.ItineraryPlace {
	formatted := make([]models.ItineraryPlace, 0, len(dayPlaces))
	for _, p := range dayPlaces {
		types := p.Types
		if types == nil {
			types = []string{}
		}
		formatted = append(formatted, models.ItineraryPlace{
			Name:           p.Name,
			Address:        p.Address,
			PlaceID:        p.PlaceID,
			Rating:         p.Rating,
			Types:          types,
			PhotoReference: p.PhotoReference,
			TimeOfDay:      p.TimeOfDay,
		})
	}
	return formatted
}
