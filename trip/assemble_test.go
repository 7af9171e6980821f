package trip

import (
	"fmt"
	"testing"
	"time"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripStart(t *testing.T) time.Time {
	t.Helper()
	start, err := time.Parse(dateLayout, "2026-06-01")
	require.NoError(t, err)
	return start
}

func goodDay(date string) models.DailyWeather {
	return models.DailyWeather{Date: date, Condition: "Clear", Temperature: 22}
}

func rainyDay(date string) models.DailyWeather {
	return models.DailyWeather{Date: date, Condition: "Rain", Temperature: 5, IsRainy: true}
}

// makePlaces builds n places with descending ratings cycling through the
// given time-of-day buckets and types.
func makePlaces(n int, timeOfDay string, types []string) []models.Place {
	out := make([]models.Place, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Place{
			PlaceID:   fmt.Sprintf("%s-%d", timeOfDay, i),
			Name:      fmt.Sprintf("%s place %d", timeOfDay, i),
			Rating:    5.0 - float64(i)*0.1,
			Types:     types,
			TimeOfDay: timeOfDay,
		})
	}
	return out
}

func TestAssembleNoPlaceRepeatsAcrossDays(t *testing.T) {
	pool := append(makePlaces(12, "morning", []string{"museum"}),
		makePlaces(12, "afternoon", []string{"cafe"})...)
	pool = append(pool, makePlaces(12, "evening", []string{"bar"})...)

	forecast := []models.DailyWeather{
		goodDay("2026-06-01"), goodDay("2026-06-02"), goodDay("2026-06-03"),
	}

	days := Assemble(tripStart(t), 3, pool, forecast)
	require.Len(t, days, 3)

	seen := make(map[string]int)
	for _, day := range days {
		for _, p := range day.Places {
			seen[p.PlaceID]++
		}
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "place %s appears %d times", id, count)
	}
}

func TestAssembleDayShapeAndOrdering(t *testing.T) {
	pool := append(makePlaces(3, "morning", []string{"museum"}),
		makePlaces(3, "afternoon", []string{"cafe"})...)
	pool = append(pool, makePlaces(3, "evening", []string{"bar"})...)

	days := Assemble(tripStart(t), 1, pool, []models.DailyWeather{goodDay("2026-06-01")})
	require.Len(t, days, 1)

	day := days[0]
	assert.Equal(t, 1, day.Day)
	assert.Equal(t, "2026-06-01", day.Date)
	require.Len(t, day.Places, PlacesPerDay)

	// two per bucket, in morning/afternoon/evening order
	buckets := make([]string, 0, len(day.Places))
	for _, p := range day.Places {
		buckets = append(buckets, p.TimeOfDay)
	}
	assert.Equal(t, []string{"morning", "morning", "afternoon", "afternoon", "evening", "evening"}, buckets)
}

func TestAssembleBadWeatherRestrictsToIndoor(t *testing.T) {
	outdoor := makePlaces(6, "morning", []string{"park", "tourist_attraction"})
	indoor := makePlaces(6, "afternoon", []string{"museum", "art_gallery"})

	days := Assemble(tripStart(t), 1, append(outdoor, indoor...),
		[]models.DailyWeather{rainyDay("2026-06-01")})
	require.Len(t, days, 1)
	require.NotEmpty(t, days[0].Places)

	for _, p := range days[0].Places {
		assert.True(t, isIndoor(p.Types), "outdoor place %s scheduled on a rainy day", p.PlaceID)
	}
}

func TestAssembleColdDayCountsAsBadWeather(t *testing.T) {
	outdoor := makePlaces(6, "morning", []string{"park"})
	cold := models.DailyWeather{Date: "2026-06-01", Condition: "Clear", Temperature: 10}

	days := Assemble(tripStart(t), 1, outdoor, []models.DailyWeather{cold})
	require.Len(t, days, 1)
	assert.Empty(t, days[0].Places, "only indoor places qualify at 10 C or below")
}

func TestAssembleClampsToForecastLength(t *testing.T) {
	pool := makePlaces(20, "morning", []string{"museum"})
	forecast := []models.DailyWeather{goodDay("2026-06-01"), goodDay("2026-06-02")}

	days := Assemble(tripStart(t), 5, pool, forecast)
	assert.Len(t, days, 2)
}

func TestAssembleGapFillTopsUpTheDay(t *testing.T) {
	// only one morning place, plenty of evening ones: the gap-fill step
	// should still reach six places
	pool := append(makePlaces(1, "morning", []string{"museum"}),
		makePlaces(8, "evening", []string{"bar"})...)

	days := Assemble(tripStart(t), 1, pool, []models.DailyWeather{goodDay("2026-06-01")})
	require.Len(t, days, 1)
	assert.Len(t, days[0].Places, PlacesPerDay)
	assert.Equal(t, "morning", days[0].Places[0].TimeOfDay)
	assert.Equal(t, "evening", days[0].Places[1].TimeOfDay)
	assert.Equal(t, "evening", days[0].Places[2].TimeOfDay)
}

func TestAssembleExhaustedPoolDegradesGracefully(t *testing.T) {
	pool := makePlaces(8, "morning", []string{"museum"})
	forecast := []models.DailyWeather{
		goodDay("2026-06-01"), goodDay("2026-06-02"), goodDay("2026-06-03"),
	}

	days := Assemble(tripStart(t), 3, pool, forecast)
	require.Len(t, days, 3)
	assert.Len(t, days[0].Places, 6)
	assert.Len(t, days[1].Places, 2)
	assert.Empty(t, days[2].Places)
}

func TestAssembleDedupesAndSortsByRating(t *testing.T) {
	pool := []models.Place{
		{PlaceID: "a", Name: "first copy", Rating: 4.0, Types: []string{"museum"}, TimeOfDay: "morning"},
		{PlaceID: "b", Name: "top rated", Rating: 4.9, Types: []string{"museum"}, TimeOfDay: "morning"},
		{PlaceID: "a", Name: "second copy", Rating: 4.8, Types: []string{"museum"}, TimeOfDay: "morning"},
		{PlaceID: "c", Name: "unrated", Types: []string{"museum"}, TimeOfDay: "morning"},
	}

	days := Assemble(tripStart(t), 1, pool, []models.DailyWeather{goodDay("2026-06-01")})
	require.Len(t, days, 1)
	require.Len(t, days[0].Places, 3)

	// first occurrence of "a" wins, ordering follows rating
	assert.Equal(t, "b", days[0].Places[0].PlaceID)
	assert.Equal(t, "first copy", days[0].Places[1].Name)
	assert.Equal(t, "c", days[0].Places[2].PlaceID, "unrated places sort last")
}
