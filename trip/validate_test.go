package trip

import (
	"testing"

	"wayfarer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() models.TripRequest {
	return models.TripRequest{
		Destination: "Tokyo",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-03",
		Interests:   []string{"food", "culture"},
	}
}

func TestValidateRequestOK(t *testing.T) {
	start, end, days, err := ValidateRequest(validRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, days)
	assert.True(t, end.After(start))
}

func TestValidateRequestSevenDaysAccepted(t *testing.T) {
	req := validRequest()
	req.EndDate = "2026-06-07" // end - start = 6 days, span = 7
	_, _, days, err := ValidateRequest(req)
	require.NoError(t, err)
	assert.Equal(t, 7, days)
}

func TestValidateRequestEightDaysRejected(t *testing.T) {
	req := validRequest()
	req.EndDate = "2026-06-08" // span = 8
	_, _, _, err := ValidateRequest(req)
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "maximum trip duration")
}

func TestValidateRequestSingleDayTrip(t *testing.T) {
	req := validRequest()
	req.EndDate = req.StartDate
	_, _, days, err := ValidateRequest(req)
	require.NoError(t, err)
	assert.Equal(t, 1, days)
}

func TestValidateRequestRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TripRequest)
	}{
		{"missing destination", func(r *models.TripRequest) { r.Destination = "" }},
		{"missing start date", func(r *models.TripRequest) { r.StartDate = "" }},
		{"missing end date", func(r *models.TripRequest) { r.EndDate = "" }},
		{"no interests", func(r *models.TripRequest) { r.Interests = nil }},
		{"malformed start date", func(r *models.TripRequest) { r.StartDate = "June 1st" }},
		{"malformed end date", func(r *models.TripRequest) { r.EndDate = "03-06-2026" }},
		{"end before start", func(r *models.TripRequest) { r.EndDate = "2026-05-28" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, _, _, err := ValidateRequest(req)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}
