package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifecarelabs/lab-portal/internal/httperr"
)

func TestValidateTransition(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.NoError(t, ValidateTransition(s), string(s))
	}

	err := ValidateTransition(Status("shipped"))
	assert.True(t, httperr.IsKind(err, httperr.KindIllegalTransition))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	assert.Error(t, ValidateTransition(Status("")))
}

func TestPaymentAfter(t *testing.T) {
	// confirmar marca pago, incondicionalmente
	assert.Equal(t, PaymentPaid, PaymentAfter(StatusConfirmed, PaymentPending))
	assert.Equal(t, PaymentPaid, PaymentAfter(StatusConfirmed, PaymentPaid))

	// as demais transições preservam o estado atual
	assert.Equal(t, PaymentPending, PaymentAfter(StatusCancelled, PaymentPending))
	assert.Equal(t, PaymentPaid, PaymentAfter(StatusCancelled, PaymentPaid))
	assert.Equal(t, PaymentPending, PaymentAfter(StatusCompleted, PaymentPending))
	assert.Equal(t, PaymentPaid, PaymentAfter(StatusPending, PaymentPaid))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
