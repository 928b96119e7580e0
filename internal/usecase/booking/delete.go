package booking

import (
	"context"

	"github.com/lifecarelabs/lab-portal/internal/audit"
	domain "github.com/lifecarelabs/lab-portal/internal/domain/booking"
)

// Exclusão definitiva (sem soft-delete); operação separada da
// transição de status, irreversível.
type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
) error {

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
