package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/audit"
	domain "github.com/lifecarelabs/lab-portal/internal/domain/booking"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: auditor,
	}
}

// Execute aplica a transição. Confirmar marca o pagamento como pago no
// mesmo UPDATE; exclusão não passa por aqui.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
	newStatus string,
) (*models.Booking, error) {

	to := domain.Status(newStatus)
	if err := domain.ValidateTransition(to); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(
				"booking_not_found",
				"Reserva não encontrada.",
			)
		}
		return nil, err
	}

	payment := domain.PaymentAfter(to, domain.PaymentStatus(current.PaymentStatus))

	updated, err := uc.repo.UpdateBookingStatus(ctx, bookingID, to, payment)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_status_" + newStatus,
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return updated, nil
}
