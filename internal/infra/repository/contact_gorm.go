package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/dieselmedia/booking-api/internal/domain/contact"
	"github.com/dieselmedia/booking-api/internal/errs"
	"github.com/dieselmedia/booking-api/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Insert(
	ctx context.Context,
	m *models.ContactMessage,
) error {
	err := r.db.WithContext(ctx).Create(m).Error
	return translate(err, "message", "insert contact message")
}

func (r *ContactGormRepository) ListRecent(
	ctx context.Context,
	limit int,
) ([]models.ContactMessage, error) {

	messages := []models.ContactMessage{}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, translate(err, "message", "list contact messages")
	}

	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}

func (r *ContactGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.ContactMessage, error) {

	var m models.ContactMessage
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		return nil, translate(err, "message", "get contact message")
	}
	return &m, nil
}

func (r *ContactGormRepository) DeleteByID(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ContactMessage{})
	if res.Error != nil {
		return translate(res.Error, "message", "delete contact message")
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("message")
	}
	return nil
}

var _ domain.Repository = (*ContactGormRepository)(nil)
