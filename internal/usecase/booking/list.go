package booking

import (
	"context"

	domain "github.com/lifecarelabs/lab-portal/internal/domain/booking"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/models"
	"github.com/lifecarelabs/lab-portal/internal/timezone"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) ByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsByUser(ctx, userID)
}

// ForStaff filtra por status e/ou data (alimenta a tela da equipe e o
// export CSV).
func (uc *ListBookings) ForStaff(
	ctx context.Context,
	status string,
	dateStr string,
) ([]models.Booking, error) {

	filter := domain.ListFilter{Status: status}

	if dateStr != "" {
		date, err := timezone.ParseDate(dateStr)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_date", "Data inválida.")
		}
		date = timezone.DateOnly(date)
		filter.Date = &date
	}

	return uc.repo.ListBookings(ctx, filter)
}
