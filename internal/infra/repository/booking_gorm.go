package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/errs"
	"github.com/dieselmedia/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Insert(
	ctx context.Context,
	b *models.Booking,
) error {
	err := r.db.WithContext(ctx).Create(b).Error
	return translate(err, "booking", "insert booking")
}

func (r *BookingGormRepository) ListRecent(
	ctx context.Context,
	limit int,
) ([]models.Booking, error) {

	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, translate(err, "booking", "list bookings")
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, translate(err, "booking", "get booking")
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&b).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Booking{}).
			Where("id = ?", id).
			Update("status", string(status)).Error; err != nil {
			return err
		}
		b.Status = string(status)
		return nil
	})
	if err != nil {
		return nil, translate(err, "booking", "update booking status")
	}
	return &b, nil
}

func (r *BookingGormRepository) DeleteByID(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{})
	if res.Error != nil {
		return translate(res.Error, "booking", "delete booking")
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("booking")
	}
	return nil
}

func (r *BookingGormRepository) ListActiveTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	times := []string{}
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booking_date = ? AND status <> ?", date, string(domain.StatusCancelled)).
		Order("created_at ASC").
		Pluck("booking_time", &times).Error; err != nil {
		return nil, translate(err, "booking", "list booked times")
	}
	return times, nil
}

var _ domain.Repository = (*BookingGormRepository)(nil)
