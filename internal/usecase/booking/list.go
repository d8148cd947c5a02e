package booking

import (
	"context"

	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns up to domain.ListLimit bookings, newest first.
func (uc *ListBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListRecent(ctx, domain.ListLimit)
}
