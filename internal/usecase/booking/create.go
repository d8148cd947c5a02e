package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/dieselmedia/booking-api/internal/audit"
	"github.com/dieselmedia/booking-api/internal/clock"
	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/models"
	"github.com/dieselmedia/booking-api/internal/validators"
)

// CreateBookingInput is the public booking request. Date and time are opaque strings.
type CreateBookingInput struct {
	ClientName  string  `json:"client_name" validate:"min=2"`
	ClientEmail string  `json:"client_email" validate:"required,email"`
	ClientPhone string  `json:"client_phone" validate:"min=10"`
	ServiceType string  `json:"service_type" validate:"required,oneof=wedding event commercial social_media real_estate"`
	BookingDate string  `json:"booking_date" validate:"required"`
	BookingTime string  `json:"booking_time" validate:"required"`
	Message     *string `json:"message"`
}

type CreateBooking struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	domains *validators.DomainChecker
	now     clock.Clock
	newID   func() string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	domains *validators.DomainChecker,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		audit:   audit,
		domains: domains,
		now:     clock.UTC,
		newID:   uuid.NewString,
	}
}

func (uc *CreateBooking) WithClock(c clock.Clock) *CreateBooking {
	uc.now = c
	return uc
}

// Execute persists a new pending booking. Slot collisions are not checked:
// two bookings for the same date and time both succeed.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// 1. input
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if err := uc.domains.Check(ctx, "client_email", in.ClientEmail); err != nil {
		return nil, err
	}

	// 2. server assigned fields
	b := &models.Booking{
		ID:          uc.newID(),
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		ServiceType: in.ServiceType,
		BookingDate: in.BookingDate,
		BookingTime: in.BookingTime,
		Message:     in.Message,
		Status:      string(domain.InitialStatus()),
		CreatedAt:   uc.now(),
	}

	// 3. persist
	if err := uc.repo.Insert(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{
			"service_type": b.ServiceType,
			"booking_date": b.BookingDate,
			"booking_time": b.BookingTime,
		},
	})

	return b, nil
}
