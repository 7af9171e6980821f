package models

import "time"

// TripRequest is the payload for itinerary generation. Budget may arrive as
// a number (currency units per day) or as a pre-set category string, so it
// stays untyped until classification.
type TripRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Interests   []string `json:"interests"`
	Travelers   int      `json:"travelers"`
	Budget      any      `json:"budget"`
}

// Place is a search result from the place provider, annotated with a
// time-of-day bucket. Places are fetched fresh per generation and never
// persisted on their own.
type Place struct {
	PlaceID        string   `json:"place_id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Rating         float64  `json:"rating"`
	Types          []string `json:"types"`
	PhotoReference string   `json:"photo_reference,omitempty"`
	TimeOfDay      string   `json:"timeOfDay,omitempty"`
}

// DailyWeather is the one-per-day summary built from the provider's
// 3-hourly forecast feed.
type DailyWeather struct {
	Date                string `json:"date" bson:"date"`
	Temperature         int    `json:"temperature" bson:"temperature"`
	MinTemp             int    `json:"min_temp" bson:"min_temp"`
	MaxTemp             int    `json:"max_temp" bson:"max_temp"`
	Condition           string `json:"condition" bson:"condition"`
	Description         string `json:"description" bson:"description"`
	Icon                string `json:"icon" bson:"icon"`
	IsRainy             bool   `json:"is_rainy" bson:"is_rainy"`
	PrecipitationChance int    `json:"precipitation_chance" bson:"precipitation_chance"`
}

// ItineraryPlace is the formatted place embedded in a day's schedule.
type ItineraryPlace struct {
	Name           string   `json:"name" bson:"name"`
	Address        string   `json:"address" bson:"address"`
	PlaceID        string   `json:"place_id" bson:"place_id"`
	Rating         float64  `json:"rating" bson:"rating"`
	Types          []string `json:"types" bson:"types"`
	PhotoReference string   `json:"photo_reference,omitempty" bson:"photo_reference,omitempty"`
	TimeOfDay      string   `json:"timeOfDay" bson:"time_of_day"`
}

type ItineraryDay struct {
	Day     int              `json:"day" bson:"day"`
	Date    string           `json:"date" bson:"date"`
	Weather DailyWeather     `json:"weather" bson:"weather"`
	Places  []ItineraryPlace `json:"places" bson:"places"`
}

// Itinerary is the persisted aggregate. ShareID is assigned lazily the first
// time the itinerary is made public and is never regenerated afterwards.
type Itinerary struct {
	ItineraryID string         `json:"itineraryid" bson:"itineraryid"`
	UserID      string         `json:"user_id" bson:"user_id"`
	Destination string         `json:"destination" bson:"destination"`
	StartDate   string         `json:"start_date" bson:"start_date"`
	EndDate     string         `json:"end_date" bson:"end_date"`
	Budget      string         `json:"budget" bson:"budget"`
	Travelers   int            `json:"travelers" bson:"travelers"`
	Interests   []string       `json:"interests" bson:"interests"`
	Days        []ItineraryDay `json:"days" bson:"days"`
	IsPublic    bool           `json:"is_public" bson:"is_public"`
	ShareID     string         `json:"share_id,omitempty" bson:"share_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// CitySuggestion is one autocomplete candidate for the destination field.
type CitySuggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}
