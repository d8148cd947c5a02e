package booking

import (
	"context"

	"github.com/dieselmedia/booking-api/internal/models"
)

// ListLimit caps every listing.
const ListLimit = 1000

// Repository is the record store contract for bookings. Implementations
// report a missing id as errs.ErrNotFound and any other failure as
// errs.ErrStorageUnavailable.
type Repository interface {
	Insert(
		ctx context.Context,
		b *models.Booking,
	) error

	// ListRecent returns at most limit bookings, newest first, never nil.
	ListRecent(
		ctx context.Context,
		limit int,
	) ([]models.Booking, error)

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateStatus(
		ctx context.Context,
		id string,
		status Status,
	) (*models.Booking, error)

	DeleteByID(
		ctx context.Context,
		id string,
	) error

	// ListActiveTimes returns booking_time of every non-cancelled booking on date.
	ListActiveTimes(
		ctx context.Context,
		date string,
	) ([]string, error)
}
