package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"wayfarer/db"
	"wayfarer/globals"
	"wayfarer/models"
	"wayfarer/trip"
	"wayfarer/userdata"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// requestingUserID pulls the authenticated user id set by the middleware.
func requestingUserID(r *http.Request) string {
	if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return id
	}
	return ""
}

// POST /api/itineraries
func GenerateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itinerary, err := trip.Generate(r.Context(), userID, req)
	if err != nil {
		var vErr *trip.ValidationError
		var uErr *trip.UpstreamError
		switch {
		case errors.As(err, &vErr):
			utils.RespondWithError(w, http.StatusBadRequest, vErr.Msg)
		case errors.As(err, &uErr):
			log.Printf("Generate itinerary upstream error: %v", err)
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			log.Printf("Generate itinerary error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Error generating itinerary")
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, itinerary); err != nil {
		log.Printf("Error inserting itinerary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}

	userdata.AddUserData("itinerary", itinerary.ItineraryID, userID)

	utils.SendResponse(w, http.StatusCreated, itinerary, "Itinerary generated successfully", nil)
}

// GET /api/itineraries
func GetUserItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.ItineraryCollection.Find(ctx, bson.M{"user_id": userID}, findOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	defer cursor.Close(ctx)

	var itineraries []models.Itinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error decoding itineraries")
		return
	}

	for i := range itineraries {
		if itineraries[i].Days == nil {
			itineraries[i].Days = []models.ItineraryDay{}
		}
	}
	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "itineraries": itineraries})
}

// GET /api/itineraries/all/:id
// Owner always sees the itinerary; everyone else only when it is public.
// Ownership mismatch is reported as not-found so ids cannot be probed.
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")
	userID := requestingUserID(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var itinerary models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&itinerary)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	if !itinerary.IsPublic && itinerary.UserID != userID {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "itinerary": itinerary})
}

// PUT /api/itineraries/:id
func UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	itineraryID := ps.ByName("id")

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// identity and share state are not patchable
	for _, field := range []string{"itineraryid", "user_id", "share_id", "is_public", "created_at", "_id"} {
		delete(patch, field)
	}
	patch["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.Itinerary
	err := db.ItineraryCollection.FindOneAndUpdate(ctx,
		bson.M{"itineraryid": itineraryID, "user_id": userID},
		bson.M{"$set": patch},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("Error updating itinerary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "itinerary": updated})
}

// DELETE /api/itineraries/:id
// Removes the record and its entry in the owner's index.
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.ItineraryCollection.DeleteOne(ctx, bson.M{"itineraryid": itineraryID, "user_id": userID})
	if err != nil {
		log.Printf("Error deleting itinerary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	userdata.RemUserData("itinerary", itineraryID, userID)

	utils.SendResponse(w, http.StatusOK, nil, "Itinerary deleted successfully", nil)
}
