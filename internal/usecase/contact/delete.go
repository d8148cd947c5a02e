package contact

import (
	"context"

	"github.com/dieselmedia/booking-api/internal/audit"
	domain "github.com/dieselmedia/booking-api/internal/domain/contact"
)

type DeleteMessage struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteMessage(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteMessage {
	return &DeleteMessage{
		repo:  repo,
		audit: audit,
	}
}

// Execute fails with errs.ErrNotFound when id does not exist.
func (uc *DeleteMessage) Execute(ctx context.Context, actor, id string) error {
	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "contact_message_deleted",
		Entity:   "contact_message",
		EntityID: id,
		Actor:    actor,
	})
	return nil
}
