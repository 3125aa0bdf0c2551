package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	"github.com/m04kA/SC-SchedulingService/internal/service/bookings/models"
)

// ParseQuery собирает запрос к сервису из query параметров.
// Поддерживаются: staffId, clientId, date (YYYY-MM-DD), status, includeCancelled.
func ParseQuery(query url.Values, actor models.Actor) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{Actor: actor}

	if raw := query.Get("staffId"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid staffId: %v", err)
		}
		req.StaffID = &staffID
	}

	if raw := query.Get("clientId"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid clientId: %v", err)
		}
		req.ClientID = &clientID
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %v", err)
		}
		req.Date = &date
	}

	if raw := query.Get("status"); raw != "" {
		status := raw
		req.Status = &status
	}

	if raw := query.Get("includeCancelled"); raw != "" {
		includeCancelled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled: %v", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
