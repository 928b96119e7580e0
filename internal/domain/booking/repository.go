package booking

import (
	"context"
	"time"

	"github.com/lifecarelabs/lab-portal/internal/models"
)

type ListFilter struct {
	Status string
	Date   *time.Time
}

type Repository interface {
	// -------- Test (catálogo) --------
	GetActiveTest(
		ctx context.Context,
		id uint,
	) (*models.Test, error)

	// -------- Booking (admissão) --------

	// AdmitBooking executa, numa única transação: releitura dos
	// bloqueios de capacidade da data (FOR UPDATE), checagem de lotação
	// do slot quando capacity > 0 e o INSERT. Fecha a corrida entre a
	// consulta de disponibilidade e a gravação.
	AdmitBooking(
		ctx context.Context,
		b *models.Booking,
		capacity int,
	) error

	// -------- Booking (estado) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// UpdateBookingStatus aplica status e payment_status no mesmo
	// UPDATE atômico.
	UpdateBookingStatus(
		ctx context.Context,
		id uint,
		status Status,
		payment PaymentStatus,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Listagens --------
	ListBookingsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	CountBookingsForSlot(
		ctx context.Context,
		date time.Time,
		slot string,
	) (int64, error)
}
