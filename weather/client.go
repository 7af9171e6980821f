package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"wayfarer/models"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client talks to the OpenWeather 5-day/3-hour forecast API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var std *Client

// Init wires the package-level client from the environment.
func Init() {
	std = NewClient(os.Getenv("OPENWEATHER_API_KEY"))
}

// GetForecast fetches the 3-hourly feed for a city and collapses it into one
// summary per calendar day.
func GetForecast(ctx context.Context, city string, days int) ([]models.DailyWeather, error) {
	if std == nil {
		Init()
	}
	return std.GetForecast(ctx, city, days)
}

type forecastResponse struct {
	Cod     json.RawMessage `json:"cod"` // the API returns "200" as a string, errors as numbers
	Message json.RawMessage `json:"message"`
	List    []forecastItem  `json:"list"`
}

type forecastItem struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		ThreeHour float64 `json:"3h"`
	} `json:"rain"`
	DtTxt string `json:"dt_txt"`
}

func (c *Client) GetForecast(ctx context.Context, city string, days int) ([]models.DailyWeather, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.APIKey)
	params.Set("units", "metric")
	params.Set("cnt", fmt.Sprintf("%d", days*8)) // 8 samples per day at 3-hour intervals

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	var data forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("weather response decode failed: %w", err)
	}

	if cod := string(data.Cod); cod != `"200"` && cod != "200" {
		return nil, fmt.Errorf("weather API error: %s", trimQuotes(string(data.Message)))
	}

	samples := make([]Sample, 0, len(data.List))
	for _, item := range data.List {
		s := Sample{
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			WindSpeed:     item.Wind.Speed,
			Precipitation: item.Rain.ThreeHour,
		}
		if len(item.Weather) > 0 {
			s.Condition = item.Weather[0].Main
			s.Description = item.Weather[0].Description
			s.Icon = item.Weather[0].Icon
		}
		// dt_txt carries the provider's local representation,
		// e.g. "2026-09-01 12:00:00"; no timezone conversion
		if len(item.DtTxt) >= 13 {
			s.Date = item.DtTxt[:10]
			fmt.Sscanf(item.DtTxt[11:13], "%d", &s.Hour)
		}
		samples = append(samples, s)
	}

	return Normalize(samples), nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
