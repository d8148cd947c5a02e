package contact

import (
	"context"

	"github.com/google/uuid"

	"github.com/dieselmedia/booking-api/internal/audit"
	"github.com/dieselmedia/booking-api/internal/clock"
	domain "github.com/dieselmedia/booking-api/internal/domain/contact"
	"github.com/dieselmedia/booking-api/internal/models"
	"github.com/dieselmedia/booking-api/internal/validators"
)

type CreateMessageInput struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"min=1"`
}

type CreateMessage struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	domains *validators.DomainChecker
	now     clock.Clock
	newID   func() string
}

func NewCreateMessage(
	repo domain.Repository,
	audit *audit.Dispatcher,
	domains *validators.DomainChecker,
) *CreateMessage {
	return &CreateMessage{
		repo:    repo,
		audit:   audit,
		domains: domains,
		now:     clock.UTC,
		newID:   uuid.NewString,
	}
}

func (uc *CreateMessage) WithClock(c clock.Clock) *CreateMessage {
	uc.now = c
	return uc
}

func (uc *CreateMessage) Execute(
	ctx context.Context,
	in CreateMessageInput,
) (*models.ContactMessage, error) {

	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if err := uc.domains.Check(ctx, "email", in.Email); err != nil {
		return nil, err
	}

	m := &models.ContactMessage{
		ID:        uc.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: uc.now(),
	}

	if err := uc.repo.Insert(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "contact_message_created",
		Entity:   "contact_message",
		EntityID: m.ID,
	})

	return m, nil
}
