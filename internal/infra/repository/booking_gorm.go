package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/lifecarelabs/lab-portal/internal/domain/booking"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Test (catálogo)
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveTest(
	ctx context.Context,
	id uint,
) (*models.Test, error) {

	var test models.Test
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&test).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

// --------------------------------------------------
// Booking (admissão)
// --------------------------------------------------

// AdmitBooking revalida os bloqueios e grava numa única transação.
// O FOR UPDATE nos bloqueios serializa contra block() concorrente na
// mesma chave; a contagem de lotação trava as reservas já existentes
// do slot antes de decidir.
func (r *BookingGormRepository) AdmitBooking(
	ctx context.Context,
	b *models.Booking,
	capacity int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var blocks []models.CapacityBlock
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"date = ? AND (time_slot = '' OR time_slot = ?)",
				b.BookingDate, b.SlotTime,
			).
			Find(&blocks).Error; err != nil {
			return err
		}

		for _, blk := range blocks {
			if blk.WholeDay() {
				return httperr.ErrConflict(
					"slot_blocked",
					"A data selecionada está indisponível.",
				)
			}
			return httperr.ErrConflict(
				"slot_blocked",
				"O horário selecionado está indisponível.",
			)
		}

		if capacity > 0 {
			var occupants []models.Booking
			if err := tx.
				Select("id").
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(
					"booking_date = ? AND slot_time = ? AND status IN ?",
					b.BookingDate, b.SlotTime,
					[]string{
						string(domain.StatusPending),
						string(domain.StatusConfirmed),
					},
				).
				Find(&occupants).Error; err != nil {
				return err
			}

			if len(occupants) >= capacity {
				return httperr.ErrConflict(
					"slot_full",
					"O horário selecionado está lotado.",
				)
			}
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (estado)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Test").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
	payment domain.PaymentStatus,
) (*models.Booking, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         string(status),
			"payment_status": string(payment),
		})

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrNotFound(
			"booking_not_found",
			"Reserva não encontrada.",
		)
	}

	return r.GetBooking(ctx, id)
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(
			"booking_not_found",
			"Reserva não encontrada.",
		)
	}
	return nil
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Test").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Test").
		Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != nil {
		q = q.Where("booking_date = ?", *filter.Date)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CountBookingsForSlot(
	ctx context.Context,
	date time.Time,
	slot string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booking_date = ? AND slot_time = ?", date, slot).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
