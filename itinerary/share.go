package itinerary

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"wayfarer/db"
	"wayfarer/models"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// EnsureShareID marks the itinerary public, assigning a share id only on the
// first call. The id is stable afterwards.
func EnsureShareID(it *models.Itinerary) string {
	if it.ShareID == "" {
		it.ShareID = utils.GetUUID()
	}
	it.IsPublic = true
	return it.ShareID
}

func shareURL(shareID string) string {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/shared/%s", frontend, shareID)
}

// POST /api/itineraries/:id/share
func ShareItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var itinerary models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID, "user_id": userID}).Decode(&itinerary)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	shareID := EnsureShareID(&itinerary)

	_, err = db.ItineraryCollection.UpdateOne(ctx,
		bson.M{"itineraryid": itineraryID},
		bson.M{"$set": bson.M{
			"is_public":  true,
			"share_id":   shareID,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		log.Printf("Error sharing itinerary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error sharing itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"message":  "Itinerary shared successfully",
		"shareId":  shareID,
		"shareUrl": shareURL(shareID),
	})
}

// GET /api/itineraries/shared/:shareId
// Public read; no authentication required.
func GetSharedItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	shareID := ps.ByName("shareId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var itinerary models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"share_id": shareID, "is_public": true}).Decode(&itinerary)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Shared itinerary not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "itinerary": itinerary})
}

// GET /api/itineraries/all/:id/qr
// Renders the share URL as a PNG QR code. The itinerary must already be
// shared.
func ShareQRCode(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var itinerary models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID, "user_id": userID}).Decode(&itinerary)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	if itinerary.ShareID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Itinerary has not been shared yet")
		return
	}

	png, err := qrcode.Encode(shareURL(itinerary.ShareID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Printf("Error writing QR code response: %v", err)
	}
}
