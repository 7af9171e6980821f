package autocom

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"wayfarer/models"
	"wayfarer/places"
	"wayfarer/rdx"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
)

const cacheTTL = time.Hour

// CitySearcher is swappable in tests.
var CitySearcher func(ctx context.Context, query string) ([]models.CitySuggestion, error) = places.SearchCities

// GET /api/cities/search?query=par
func SearchCities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if len(query) < 2 {
		utils.RespondWithError(w, http.StatusBadRequest, "Query must be at least 2 characters")
		return
	}

	cacheKey := "cities:" + strings.ToLower(query)
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		var cities []models.CitySuggestion
		if err := json.Unmarshal([]byte(cached), &cities); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "cities": cities})
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cities, err := CitySearcher(ctx, query)
	if err != nil {
		log.Printf("City search failed for %q: %v", query, err)
		utils.RespondWithError(w, http.StatusBadGateway, "Error searching cities")
		return
	}

	if data, err := json.Marshal(cities); err == nil {
		if err := rdx.SetWithExpiry(cacheKey, string(data), cacheTTL); err != nil {
			log.Printf("Failed to cache city suggestions: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "cities": cities})
}
