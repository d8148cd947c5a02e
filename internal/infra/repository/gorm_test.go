package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	dbpkg "github.com/dieselmedia/booking-api/internal/db"
	domain "github.com/dieselmedia/booking-api/internal/domain/booking"
	"github.com/dieselmedia/booking-api/internal/errs"
	"github.com/dieselmedia/booking-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbpkg.Open(sqlite.Open(":memory:"), true)
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))
	t.Cleanup(func() { _ = dbpkg.Close(db) })

	return db
}

var t0 = time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC)

func booking(id, date, slot, status string, createdAt time.Time) *models.Booking {
	return &models.Booking{
		ID:          id,
		ClientName:  "Ana Lima",
		ClientEmail: "ana@example.com",
		ClientPhone: "5551234567",
		ServiceType: "wedding",
		BookingDate: date,
		BookingTime: slot,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

func TestBookingGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingGormRepository(newTestDB(t))

	empty, err := repo.ListRecent(ctx, domain.ListLimit)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	msg := "Outdoor ceremony"
	first := booking("b-1", "2025-06-01", "09:00 AM", "pending", t0)
	first.Message = &msg
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, booking("b-2", "2025-06-01", "10:00 AM", "cancelled", t0.Add(time.Second))))
	require.NoError(t, repo.Insert(ctx, booking("b-3", "2025-06-02", "09:00 AM", "confirmed", t0.Add(2*time.Second))))

	list, err := repo.ListRecent(ctx, domain.ListLimit)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"b-3", "b-2", "b-1"}, []string{list[0].ID, list[1].ID, list[2].ID})

	capped, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)

	got, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	require.NotNil(t, got.Message)
	assert.Equal(t, "Outdoor ceremony", *got.Message)
	assert.Equal(t, "09:00 AM", got.BookingTime)

	times, err := repo.ListActiveTimes(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM"}, times)

	updated, err := repo.UpdateStatus(ctx, "b-2", domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)
	assert.Equal(t, "10:00 AM", updated.BookingTime)

	times, err = repo.ListActiveTimes(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"09:00 AM", "10:00 AM"}, times)

	require.NoError(t, repo.DeleteByID(ctx, "b-1"))
	_, err = repo.GetByID(ctx, "b-1")
	assert.True(t, errs.IsNotFound(err))
}

func TestBookingGormRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingGormRepository(newTestDB(t))
	require.NoError(t, repo.Insert(ctx, booking("b-1", "2025-06-01", "09:00 AM", "pending", t0)))

	_, err := repo.GetByID(ctx, "missing")
	assert.True(t, errs.IsNotFound(err))

	_, err = repo.UpdateStatus(ctx, "missing", domain.StatusConfirmed)
	assert.True(t, errs.IsNotFound(err))

	err = repo.DeleteByID(ctx, "missing")
	assert.True(t, errs.IsNotFound(err))

	got, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

func TestBookingGormRepositoryStorageFailure(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBookingGormRepository(db)

	require.NoError(t, dbpkg.Close(db))

	err := repo.Insert(ctx, booking("b-1", "2025-06-01", "09:00 AM", "pending", t0))
	assert.True(t, errs.IsStorage(err))

	_, err = repo.ListRecent(ctx, 10)
	assert.True(t, errs.IsStorage(err))
}

func TestContactGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContactGormRepository(newTestDB(t))

	for i, id := range []string{"m-1", "m-2"} {
		require.NoError(t, repo.Insert(ctx, &models.ContactMessage{
			ID:        id,
			Name:      "Bruno",
			Email:     "bruno@example.com",
			Message:   "Do you cover corporate events?",
			CreatedAt: t0.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := repo.ListRecent(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m-2", list[0].ID)

	got, err := repo.GetByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, "Do you cover corporate events?", got.Message)

	require.NoError(t, repo.DeleteByID(ctx, "m-1"))
	assert.True(t, errs.IsNotFound(repo.DeleteByID(ctx, "m-1")))

	_, err = repo.GetByID(ctx, "m-1")
	assert.True(t, errs.IsNotFound(err))
}

func TestFreeFormColumnsAreUnboundedOnPostgres(t *testing.T) {
	dialector := postgres.Dialector{Config: &postgres.Config{}}

	cases := map[any][]string{
		&models.Booking{}:        {"ClientName", "ClientEmail", "ClientPhone", "BookingDate", "BookingTime", "Message"},
		&models.ContactMessage{}: {"Name", "Email", "Message"},
	}

	for model, fields := range cases {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, name := range fields {
			field := s.LookUpField(name)
			require.NotNil(t, field, name)
			assert.Equal(t, "text", dialector.DataTypeOf(field), "%s.%s", s.Table, name)
		}
	}
}

func TestGormRepositoriesKeepLongValues(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	bookings := NewBookingGormRepository(db)
	contacts := NewContactGormRepository(db)

	long := strings.Repeat("x", 300)
	b := booking("b-long", "Saturday the first of June, late afternoon", "around a quarter past four", "pending", t0)
	b.ClientName = long
	b.ClientEmail = long + "@example.com"
	b.ClientPhone = "+55 (11) 5555-1234 ext. 9876, ask for the front desk"
	require.NoError(t, bookings.Insert(ctx, b))

	got, err := bookings.GetByID(ctx, "b-long")
	require.NoError(t, err)
	assert.Equal(t, b.BookingDate, got.BookingDate)
	assert.Equal(t, b.BookingTime, got.BookingTime)
	assert.Equal(t, b.ClientPhone, got.ClientPhone)
	assert.Equal(t, long, got.ClientName)

	times, err := bookings.ListActiveTimes(ctx, b.BookingDate)
	require.NoError(t, err)
	assert.Equal(t, []string{b.BookingTime}, times)

	require.NoError(t, contacts.Insert(ctx, &models.ContactMessage{
		ID:        "m-long",
		Name:      long,
		Email:     long + "@example.com",
		Message:   "hi",
		CreatedAt: t0,
	}))
	msg, err := contacts.GetByID(ctx, "m-long")
	require.NoError(t, err)
	assert.Equal(t, long, msg.Name)
}
