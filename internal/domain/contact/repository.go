package contact

import (
	"context"

	"github.com/dieselmedia/booking-api/internal/models"
)

const ListLimit = 1000

type Repository interface {
	Insert(
		ctx context.Context,
		m *models.ContactMessage,
	) error

	ListRecent(
		ctx context.Context,
		limit int,
	) ([]models.ContactMessage, error)

	GetByID(
		ctx context.Context,
		id string,
	) (*models.ContactMessage, error)

	DeleteByID(
		ctx context.Context,
		id string,
	) error
}
