package trip

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"wayfarer/models"
	"wayfarer/places"
	"wayfarer/utils"
	"wayfarer/weather"
)

const generateTimeout = 45 * time.Second

// UpstreamError marks a fatal provider failure during generation.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Overridable for tests.
var (
	searchPlaces = places.SearchPlaces
	categorize   = places.CategorizeByTime
	getForecast  = weather.GetForecast
)

// Generate validates the request, fans out to the place and weather
// providers, and assembles a new (not yet persisted) itinerary for the user.
func Generate(ctx context.Context, userID string, req models.TripRequest) (*models.Itinerary, error) {
	start, _, days, err := ValidateRequest(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	// Weather retrieval and the per-interest place searches are
	// independent; run them all concurrently and join before assembly.
	var wg sync.WaitGroup

	var forecast []models.DailyWeather
	var weatherErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		forecast, weatherErr = getForecast(ctx, req.Destination, days)
	}()

	var mu sync.Mutex
	var allPlaces []models.Place
	for _, interest := range req.Interests {
		wg.Add(1)
		go func(interest string) {
			defer wg.Done()
			results, err := searchPlaces(ctx, req.Destination, interest)
			if err != nil {
				// a failed interest is skipped, not fatal
				log.Printf("place search failed for %q in %q: %v", interest, req.Destination, err)
				return
			}
			if len(results) == 0 {
				log.Printf("no places found for %q in %q", interest, req.Destination)
				return
			}
			categorized := categorize(results)
			mu.Lock()
			allPlaces = append(allPlaces, categorized...)
			mu.Unlock()
		}(interest)
	}

	wg.Wait()

	if weatherErr != nil {
		return nil, &UpstreamError{Provider: "weather", Err: weatherErr}
	}

	itineraryDays := Assemble(start, days, allPlaces, forecast)

	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}

	now := time.Now()
	return &models.Itinerary{
		ItineraryID: "i" + utils.GenerateRandomString(12),
		UserID:      userID,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      ClassifyBudget(req.Budget),
		Travelers:   travelers,
		Interests:   req.Interests,
		Days:        itineraryDays,
		IsPublic:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
