package userdata

import (
	"context"
	"log"
	"net/http"
	"time"

	"wayfarer/db"
	"wayfarer/middleware"
	"wayfarer/models"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var ValidEntityTypes = map[string]bool{
	"itinerary": true,
}

func IsValidEntityType(entityType string) bool {
	return ValidEntityTypes[entityType]
}

// AddUserData appends an entity reference to the owner's index.
func AddUserData(entityType, entityID, userID string) {
	content := models.UserData{
		UserID:     userID,
		EntityID:   entityID,
		EntityType: entityType,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}
	_, err := db.UserDataCollection.InsertOne(context.TODO(), content)
	if err != nil {
		log.Printf("Error inserting user data: %v", err)
	}
}

// RemUserData detaches an entity reference from the owner's index.
func RemUserData(entityType, entityID, userID string) {
	_, err := db.UserDataCollection.DeleteOne(context.TODO(), bson.M{
		"entity_id":   entityID,
		"entity_type": entityType,
		"userid":      userID,
	})
	if err != nil {
		log.Printf("Error deleting user data: %v", err)
	}
}

// GET /api/user/data?entity_type=itinerary
func GetUserProfileData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entityType := r.URL.Query().Get("entity_type")
	if entityType == "" {
		http.Error(w, "Entity type is required", http.StatusBadRequest)
		return
	}
	if !IsValidEntityType(entityType) {
		http.Error(w, "Invalid entity type", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	results, err := utils.FindAndDecode[models.UserData](ctx, db.UserDataCollection, bson.M{
		"entity_type": entityType,
		"userid":      claims.UserID,
	})
	if err != nil {
		log.Printf("Error fetching user data: %v", err)
		http.Error(w, "Failed to fetch user data", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.UserData{}
	}

	utils.RespondWithJSON(w, http.StatusOK, results)
}
