package booking

import (
	"context"

	"github.com/dieselmedia/booking-api/internal/audit"
	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/models"
	"github.com/dieselmedia/booking-api/internal/validators"
)

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the status unconditionally; there is no transition table.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actor string,
	id string,
	in UpdateStatusInput,
) (*models.Booking, error) {

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	b, err := uc.repo.UpdateStatus(ctx, id, domain.Status(in.Status))
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: b.ID,
		Actor:    actor,
		Metadata: map[string]string{"status": in.Status},
	})

	return b, nil
}
