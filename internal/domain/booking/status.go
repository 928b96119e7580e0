package booking

import "github.com/lifecarelabs/lab-portal/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func IsKnownStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidateTransition aceita qualquer movimento entre os quatro estados
// conhecidos (política do laboratório: a equipe pode reabrir uma reserva
// concluída). Valores fora do enum são rejeitados.
func ValidateTransition(to Status) error {
	if !IsKnownStatus(to) {
		return httperr.ErrIllegalTransition(
			"invalid_status",
			"Status desconhecido.",
		)
	}
	return nil
}

// PaymentAfter infere o estado de pagamento que acompanha a transição:
// confirmar uma reserva marca o pagamento como pago, incondicionalmente.
func PaymentAfter(to Status, current PaymentStatus) PaymentStatus {
	if to == StatusConfirmed {
		return PaymentPaid
	}
	return current
}

func InitialStatus() Status {
	return StatusPending
}
