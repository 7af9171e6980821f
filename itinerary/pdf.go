package itinerary

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"wayfarer/db"
	"wayfarer/models"
	"wayfarer/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/itineraries/all/:id/download
// Renders the itinerary as a printable PDF. Owners can always download;
// anyone can download a public itinerary.
func DownloadItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	pdfBytes, err := renderPDF(itinerary)
	if err != nil {
		log.Printf("Error rendering itinerary PDF: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="itinerary-%s.pdf"`, itinerary.ItineraryID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

func renderPDF(itinerary models.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("Trip to %s", itinerary.Destination))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%s to %s  |  %d traveler(s)  |  %s",
		itinerary.StartDate, itinerary.EndDate, itinerary.Travelers, itinerary.Budget))
	pdf.Ln(12)

	for _, day := range itinerary.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", day.Day, day.Date))
		pdf.Ln(7)

		pdf.SetFont("Arial", "I", 9)
		pdf.Cell(0, 6, fmt.Sprintf("%s, %d C (min %d / max %d), %d%% chance of rain",
			day.Weather.Condition, day.Weather.Temperature,
			day.Weather.MinTemp, day.Weather.MaxTemp,
			day.Weather.PrecipitationChance))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 10)
		if len(day.Places) == 0 {
			pdf.Cell(0, 6, "No places scheduled")
			pdf.Ln(6)
		}
		for _, place := range day.Places {
			line := fmt.Sprintf("[%s] %s", place.TimeOfDay, place.Name)
			if place.Rating > 0 {
				line += fmt.Sprintf(" (%.1f)", place.Rating)
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(5)
			if place.Address != "" {
				pdf.SetFont("Arial", "I", 8)
				pdf.Cell(0, 5, "      "+place.Address)
				pdf.SetFont("Arial", "", 10)
				pdf.Ln(5)
			}
		}
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
