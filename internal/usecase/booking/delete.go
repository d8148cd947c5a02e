package booking

import (
	"context"

	"github.com/dieselmedia/booking-api/internal/audit"
	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute fails with errs.ErrNotFound when id does not exist.
func (uc *DeleteBooking) Execute(ctx context.Context, actor, id string) error {
	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: id,
		Actor:    actor,
	})
	return nil
}
