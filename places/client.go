package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"wayfarer/models"
)

const (
	defaultBaseURL    = "https://maps.googleapis.com/maps/api/place"
	defaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

	maxPages              = 3
	maxResultsPerInterest = 40
)

// Client talks to the Google Places web services.
type Client struct {
	APIKey     string
	BaseURL    string
	GeocodeURL string
	HTTPClient *http.Client
	// PageDelay is how long a pagination token needs before it becomes
	// valid on the provider side.
	PageDelay time.Duration
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		GeocodeURL: defaultGeocodeURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		PageDelay: 2 * time.Second,
	}
}

var std *Client

// Init wires the package-level client from the environment.
func Init() {
	std = NewClient(os.Getenv("GOOGLE_PLACES_API_KEY"))
}

func SearchPlaces(ctx context.Context, destination, interest string) ([]models.Place, error) {
	if std == nil {
		Init()
	}
	return std.SearchPlaces(ctx, destination, interest)
}

func SearchCities(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	if std == nil {
		Init()
	}
	return std.SearchCities(ctx, query)
}

type searchResponse struct {
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message"`
	NextPageToken string        `json:"next_page_token"`
	Results       []placeResult `json:"results"`
}

type placeResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Vicinity         string   `json:"vicinity"`
	Rating           float64  `json:"rating"`
	Types            []string `json:"types"`
	Photos           []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

// SearchPlaces runs a text search for "<interest> in <destination>",
// following up to three result pages. The first page must succeed; failures
// on later pages return whatever was accumulated so far. A caller
// cancellation while waiting on a pagination token likewise abandons the
// remaining pages.
func (c *Client) SearchPlaces(ctx context.Context, destination, interest string) ([]models.Place, error) {
	query := fmt.Sprintf("%s in %s", interest, destination)

	var accumulated []models.Place
	pageToken := ""

	for page := 0; page < maxPages; page++ {
		if pageToken != "" {
			// the token is not valid until the provider has settled it
			select {
			case <-time.After(c.PageDelay):
			case <-ctx.Done():
				return accumulated, nil
			}
		}

		results, nextToken, err := c.textSearch(ctx, query, pageToken)
		if err != nil {
			if page == 0 {
				return nil, err
			}
			log.Printf("places page %d failed for %q: %v", page+1, query, err)
			return accumulated, nil
		}

		accumulated = append(accumulated, results...)
		if len(accumulated) >= maxResultsPerInterest {
			return accumulated[:maxResultsPerInterest], nil
		}
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	return accumulated, nil
}

func (c *Client) textSearch(ctx context.Context, query, pageToken string) ([]models.Place, string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.APIKey)
	params.Set("radius", "50000")
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	var data searchResponse
	if err := c.getJSON(ctx, c.BaseURL+"/textsearch/json?"+params.Encode(), &data); err != nil {
		return nil, "", err
	}

	if data.Status != "OK" && data.Status != "ZERO_RESULTS" {
		return nil, "", placesError(data.Status, data.ErrorMessage)
	}

	places := make([]models.Place, 0, len(data.Results))
	for _, r := range data.Results {
		places = append(places, mapResult(r))
	}
	return places, data.NextPageToken, nil
}

// SearchCities queries the autocomplete endpoint restricted to cities.
// ZERO_RESULTS is a valid empty answer, not an error.
func (c *Client) SearchCities(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("types", "(cities)")
	params.Set("key", c.APIKey)

	var data struct {
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
		Predictions  []struct {
			Description string `json:"description"`
			PlaceID     string `json:"place_id"`
		} `json:"predictions"`
	}
	if err := c.getJSON(ctx, c.BaseURL+"/autocomplete/json?"+params.Encode(), &data); err != nil {
		return nil, err
	}

	if data.Status != "OK" && data.Status != "ZERO_RESULTS" {
		return nil, placesError(data.Status, data.ErrorMessage)
	}

	cities := make([]models.CitySuggestion, 0, len(data.Predictions))
	for _, p := range data.Predictions {
		cities = append(cities, models.CitySuggestion{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}
	return cities, nil
}

// GetNearbyPlaces geocodes the destination and searches around it.
func (c *Client) GetNearbyPlaces(ctx context.Context, destination, placeType string, radius int) ([]models.Place, error) {
	params := url.Values{}
	params.Set("address", destination)
	params.Set("key", c.APIKey)

	var geo struct {
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, c.GeocodeURL+"?"+params.Encode(), &geo); err != nil {
		return nil, err
	}
	if len(geo.Results) == 0 {
		return nil, fmt.Errorf("destination not found: %s", destination)
	}
	loc := geo.Results[0].Geometry.Location

	nearby := url.Values{}
	nearby.Set("location", fmt.Sprintf("%f,%f", loc.Lat, loc.Lng))
	nearby.Set("radius", fmt.Sprintf("%d", radius))
	nearby.Set("type", placeType)
	nearby.Set("key", c.APIKey)

	var data searchResponse
	if err := c.getJSON(ctx, c.BaseURL+"/nearbysearch/json?"+nearby.Encode(), &data); err != nil {
		return nil, err
	}
	if data.Status != "OK" && data.Status != "ZERO_RESULTS" {
		return nil, placesError(data.Status, data.ErrorMessage)
	}

	places := make([]models.Place, 0, len(data.Results))
	for _, r := range data.Results {
		places = append(places, mapResult(r))
	}
	return places, nil
}

// GetPlaceDetails looks up a single place by provider id.
func (c *Client) GetPlaceDetails(ctx context.Context, placeID string) (*models.Place, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,rating,photos,types")
	params.Set("key", c.APIKey)

	var data struct {
		Status       string      `json:"status"`
		ErrorMessage string      `json:"error_message"`
		Result       placeResult `json:"result"`
	}
	if err := c.getJSON(ctx, c.BaseURL+"/details/json?"+params.Encode(), &data); err != nil {
		return nil, err
	}
	if data.Status != "OK" {
		return nil, placesError(data.Status, data.ErrorMessage)
	}

	place := mapResult(data.Result)
	return &place, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places response decode failed: %w", err)
	}
	return nil
}

func mapResult(r placeResult) models.Place {
	address := r.FormattedAddress
	if address == "" {
		address = r.Vicinity
	}
	p := models.Place{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: address,
		Rating:  r.Rating,
		Types:   r.Types,
	}
	if len(r.Photos) > 0 {
		p.PhotoReference = r.Photos[0].PhotoReference
	}
	return p
}

func placesError(status, message string) error {
	if message != "" {
		return fmt.Errorf("places API error: %s (%s)", status, message)
	}
	return fmt.Errorf("places API error: %s", status)
}
