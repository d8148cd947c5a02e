package booking

import (
	"context"

	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context, id string) (*models.Booking, error) {
	return uc.repo.GetByID(ctx, id)
}
