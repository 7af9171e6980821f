package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forecastServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.BaseURL = srv.URL
	return c
}

func forecastItemJSON(dtTxt string, temp float64, condition string, rain float64) map[string]any {
	item := map[string]any{
		"main":   map[string]any{"temp": temp, "humidity": 60},
		"wind":   map[string]any{"speed": 3.4},
		"dt_txt": dtTxt,
		"weather": []map[string]any{
			{"main": condition, "description": "test " + condition, "icon": "01d"},
		},
	}
	if rain > 0 {
		item["rain"] = map[string]any{"3h": rain}
	}
	return item
}

func TestGetForecast(t *testing.T) {
	c := forecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Tokyo", q.Get("q"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "16", q.Get("cnt"), "8 samples per requested day")

		list := []map[string]any{}
		for hour := 0; hour < 24; hour += 3 {
			list = append(list, forecastItemJSON(
				fmt.Sprintf("2026-06-01 %02d:00:00", hour), 21.5, "Clear", 0))
			list = append(list, forecastItemJSON(
				fmt.Sprintf("2026-06-02 %02d:00:00", hour), 12.0, "Rain", 0.8))
		}
		json.NewEncoder(w).Encode(map[string]any{"cod": "200", "list": list})
	})

	daily, err := c.GetForecast(context.Background(), "Tokyo", 2)
	require.NoError(t, err)
	require.Len(t, daily, 2)

	assert.Equal(t, "2026-06-01", daily[0].Date)
	assert.Equal(t, "Clear", daily[0].Condition)
	assert.Equal(t, 22, daily[0].Temperature)
	assert.False(t, daily[0].IsRainy)

	assert.Equal(t, "2026-06-02", daily[1].Date)
	assert.Equal(t, "Rain", daily[1].Condition)
	assert.True(t, daily[1].IsRainy)
	assert.Equal(t, 100, daily[1].PrecipitationChance)
}

func TestGetForecastCityNotFound(t *testing.T) {
	c := forecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"cod":     "404",
			"message": "city not found",
		})
	})

	_, err := c.GetForecast(context.Background(), "Atlantis", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "city not found")
}

func TestGetForecastNumericErrorCode(t *testing.T) {
	// rate-limit errors come back with a numeric cod
	c := forecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"cod":     429,
			"message": "Your account is temporary blocked",
		})
	})

	_, err := c.GetForecast(context.Background(), "Tokyo", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temporary blocked")
}

func TestGetForecastMalformedBody(t *testing.T) {
	c := forecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	})

	_, err := c.GetForecast(context.Background(), "Tokyo", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
