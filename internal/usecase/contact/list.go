package contact

import (
	"context"

	domain "github.com/dieselmedia/booking-api/internal/domain/contact"
	"github.com/dieselmedia/booking-api/internal/models"
)

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

func (uc *ListMessages) Execute(ctx context.Context) ([]models.ContactMessage, error) {
	return uc.repo.ListRecent(ctx, domain.ListLimit)
}

type GetMessage struct {
	repo domain.Repository
}

func NewGetMessage(repo domain.Repository) *GetMessage {
	return &GetMessage{repo: repo}
}

func (uc *GetMessage) Execute(ctx context.Context, id string) (*models.ContactMessage, error) {
	return uc.repo.GetByID(ctx, id)
}
