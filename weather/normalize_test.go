package weather

import (
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eightSamples builds a full day of 3-hourly samples starting at midnight.
func eightSamples(date string, temp float64, condition string) []Sample {
	samples := make([]Sample, 0, 8)
	for i := 0; i < 8; i++ {
		samples = append(samples, Sample{
			Date:        date,
			Hour:        i * 3,
			Temperature: temp,
			Condition:   condition,
			Description: "desc " + condition,
			Icon:        "01d",
		})
	}
	return samples
}

func TestNormalizePrecipitation(t *testing.T) {
	samples := eightSamples("2026-06-01", 18, "Clouds")
	samples[2].Precipitation = 0.4
	samples[5].Precipitation = 1.2

	daily := Normalize(samples)
	require.Len(t, daily, 1)

	day := daily[0]
	assert.True(t, day.IsRainy)
	assert.Equal(t, 25, day.PrecipitationChance, "2 wet samples out of 8")
}

func TestNormalizeDryDay(t *testing.T) {
	daily := Normalize(eightSamples("2026-06-01", 18, "Clear"))
	require.Len(t, daily, 1)
	assert.False(t, daily[0].IsRainy)
	assert.Equal(t, 0, daily[0].PrecipitationChance)
}

func TestNormalizeTemperatures(t *testing.T) {
	samples := eightSamples("2026-06-01", 20, "Clear")
	samples[0].Temperature = 14.4
	samples[4].Temperature = 26.6

	daily := Normalize(samples)
	require.Len(t, daily, 1)

	day := daily[0]
	assert.Equal(t, 14, day.MinTemp)
	assert.Equal(t, 27, day.MaxTemp)
	// (14.4 + 26.6 + 6*20) / 8 = 20.125
	assert.Equal(t, 20, day.Temperature)
}

func TestNormalizeGroupsByDate(t *testing.T) {
	samples := append(eightSamples("2026-06-01", 18, "Clear"),
		eightSamples("2026-06-02", 12, "Rain")...)

	daily := Normalize(samples)
	require.Len(t, daily, 2)
	assert.Equal(t, "2026-06-01", daily[0].Date)
	assert.Equal(t, "2026-06-02", daily[1].Date)
	assert.Equal(t, "Clear", daily[0].Condition)
	assert.Equal(t, "Rain", daily[1].Condition)
}

func TestNormalizeDominantCondition(t *testing.T) {
	samples := eightSamples("2026-06-01", 18, "Clouds")
	for i := 3; i < 8; i++ {
		samples[i].Condition = "Rain"
	}

	daily := Normalize(samples)
	require.Len(t, daily, 1)
	assert.Equal(t, "Rain", daily[0].Condition, "5 of 8 samples are rainy")
}

func TestNormalizeDominantConditionTieBreak(t *testing.T) {
	// Clouds, Rain, Rain, Clouds: Rain is the first condition to reach
	// the maximum count of two
	samples := []Sample{
		{Date: "2026-06-01", Hour: 0, Condition: "Clouds"},
		{Date: "2026-06-01", Hour: 3, Condition: "Rain"},
		{Date: "2026-06-01", Hour: 6, Condition: "Rain"},
		{Date: "2026-06-01", Hour: 9, Condition: "Clouds"},
	}

	daily := Normalize(samples)
	require.Len(t, daily, 1)
	assert.Equal(t, "Rain", daily[0].Condition)
}

func TestNormalizeMiddaySampleIsRepresentative(t *testing.T) {
	samples := eightSamples("2026-06-01", 18, "Clear")
	samples[4].Hour = 12
	samples[4].Description = "scattered clouds at noon"
	samples[4].Icon = "03d"

	daily := Normalize(samples)
	require.Len(t, daily, 1)
	assert.Equal(t, "scattered clouds at noon", daily[0].Description)
	assert.Equal(t, "03d", daily[0].Icon)
}

func TestNormalizeMiddayFallbackToMiddleSample(t *testing.T) {
	// only early-morning samples: no hour in [11,14]
	samples := []Sample{
		{Date: "2026-06-01", Hour: 0, Condition: "Clear", Description: "a"},
		{Date: "2026-06-01", Hour: 3, Condition: "Clear", Description: "b"},
		{Date: "2026-06-01", Hour: 6, Condition: "Clear", Description: "c"},
	}

	daily := Normalize(samples)
	require.Len(t, daily, 1)
	assert.Equal(t, "b", daily[0].Description)
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
}

func TestIsGoodForOutdoor(t *testing.T) {
	tests := []struct {
		name string
		day  models.DailyWeather
		want bool
	}{
		{"warm and clear", models.DailyWeather{Condition: "Clear", Temperature: 22}, true},
		{"rain", models.DailyWeather{Condition: "Rain", Temperature: 22}, false},
		{"thunderstorm", models.DailyWeather{Condition: "Thunderstorm", Temperature: 25}, false},
		{"snow", models.DailyWeather{Condition: "Snow", Temperature: 2}, false},
		{"extreme", models.DailyWeather{Condition: "Extreme", Temperature: 30}, false},
		{"clear but cold", models.DailyWeather{Condition: "Clear", Temperature: 10}, false},
		{"clear just warm enough", models.DailyWeather{Condition: "Clear", Temperature: 11}, true},
		{"clouds are fine", models.DailyWeather{Condition: "Clouds", Temperature: 15}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGoodForOutdoor(tt.day))
		})
	}
}
