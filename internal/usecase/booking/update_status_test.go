package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lifecarelabs/lab-portal/internal/domain/booking"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

func TestUpdateStatusConfirmMarksPaid(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: &models.Booking{ID: 1, Status: "pending", PaymentStatus: "pending"},
	}
	uc := NewUpdateBookingStatus(repo, nil)

	updated, err := uc.Execute(context.Background(), 99, 1, "confirmed")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", updated.Status)
	assert.Equal(t, "paid", updated.PaymentStatus)
	assert.Equal(t, domain.PaymentPaid, repo.updatedPayment)
}

func TestUpdateStatusCancelKeepsPayment(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: &models.Booking{ID: 1, Status: "confirmed", PaymentStatus: "paid"},
	}
	uc := NewUpdateBookingStatus(repo, nil)

	updated, err := uc.Execute(context.Background(), 99, 1, "cancelled")
	require.NoError(t, err)

	// cancelar não desfaz o pagamento registrado
	assert.Equal(t, "cancelled", updated.Status)
	assert.Equal(t, "paid", updated.PaymentStatus)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: &models.Booking{ID: 1, Status: "pending", PaymentStatus: "pending"},
	}
	uc := NewUpdateBookingStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 99, 1, "archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	// rejeitado antes de tocar o repositório
	assert.Empty(t, repo.updatedStatus)
}

func TestUpdateStatusBookingNotFound(t *testing.T) {
	uc := NewUpdateBookingStatus(&fakeBookingRepo{}, nil)

	_, err := uc.Execute(context.Background(), 99, 42, "confirmed")
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
