package booking

import (
	"context"
	"strings"

	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/validators"
)

type GetAvailableTimes struct {
	repo domain.Repository
}

func NewGetAvailableTimes(repo domain.Repository) *GetAvailableTimes {
	return &GetAvailableTimes{repo: repo}
}

// Execute derives free slots for date. Cancelled bookings do not occupy a slot.
func (uc *GetAvailableTimes) Execute(
	ctx context.Context,
	date string,
) (domain.Availability, error) {

	if strings.TrimSpace(date) == "" {
		return domain.Availability{}, validators.Field("date", "Query parameter date is required")
	}

	booked, err := uc.repo.ListActiveTimes(ctx, date)
	if err != nil {
		return domain.Availability{}, err
	}

	return domain.ComputeAvailability(booked), nil
}
