package trip

import (
	"fmt"
	"time"

	"wayfarer/models"
)

const (
	// MaxTripDays is the longest supported trip span.
	MaxTripDays = 7

	dateLayout = "2006-01-02"
)

// ValidationError marks a request rejected before any upstream call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ValidateRequest checks a trip request and returns the parsed date range
// plus the trip span in days (inclusive of both endpoints).
func ValidateRequest(req models.TripRequest) (start, end time.Time, days int, err error) {
	if req.Destination == "" {
		return start, end, 0, invalid("destination is required")
	}
	if req.StartDate == "" || req.EndDate == "" {
		return start, end, 0, invalid("start and end dates are required")
	}
	if len(req.Interests) == 0 {
		return start, end, 0, invalid("at least one interest is required")
	}

	start, err = time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return start, end, 0, invalid("invalid start date: %s", req.StartDate)
	}
	end, err = time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return start, end, 0, invalid("invalid end date: %s", req.EndDate)
	}
	if end.Before(start) {
		return start, end, 0, invalid("end date must not be before start date")
	}

	days = int(end.Sub(start).Hours()/24) + 1
	if days > MaxTripDays {
		return start, end, 0, invalid("maximum trip duration is %d days", MaxTripDays)
	}

	return start, end, days, nil
}
