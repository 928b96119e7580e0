package booking

import (
	"context"
	"fmt"

	"github.com/lifecarelabs/lab-portal/internal/audit"
	domain "github.com/lifecarelabs/lab-portal/internal/domain/booking"
	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/models"
	"github.com/lifecarelabs/lab-portal/internal/notify"
	"github.com/lifecarelabs/lab-portal/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint
	TestID uint

	Date     string
	SlotTime string

	PatientName  string
	PatientPhone string
	PatientEmail string

	HomeCollection    bool
	CollectionAddress string

	ReferralType string
	DoctorName   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher

	capacity    int
	labTimezone string
	labEmail    string
	labName     string
}

func NewCreateBooking(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	capacity int,
	labTimezone string,
	labEmail string,
	labName string,
) *CreateBooking {
	return &CreateBooking{
		repo:        repo,
		notifier:    notifier,
		audit:       auditor,
		capacity:    capacity,
		labTimezone: labTimezone,
		labEmail:    labEmail,
		labName:     labName,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Campos obrigatórios
	// --------------------------------------------------
	if in.TestID == 0 || in.Date == "" || in.SlotTime == "" ||
		in.PatientName == "" || in.PatientPhone == "" ||
		in.CollectionAddress == "" {
		return nil, httperr.ErrValidation(
			"missing_fields",
			"Preencha todos os campos obrigatórios.",
		)
	}

	// --------------------------------------------------
	// Data e slot
	// --------------------------------------------------
	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Data inválida.")
	}
	date = timezone.DateOnly(date)

	if date.Before(timezone.Today(uc.labTimezone)) {
		return nil, httperr.ErrValidation(
			"past_date",
			"Não é possível reservar para uma data passada.",
		)
	}

	if !schedule.IsValidSlot(in.SlotTime) {
		return nil, httperr.ErrValidation(
			"invalid_slot",
			"Horário fora da grade de coleta.",
		)
	}

	// --------------------------------------------------
	// Exame ativo no catálogo
	// --------------------------------------------------
	test, err := uc.repo.GetActiveTest(ctx, in.TestID)
	if err != nil {
		return nil, httperr.ErrValidation(
			"test_not_found",
			"Exame inválido.",
		)
	}

	// --------------------------------------------------
	// Snapshot do paciente + admissão atômica
	// --------------------------------------------------
	referral := in.ReferralType
	if referral == "" {
		referral = "self"
	}

	b := &models.Booking{
		UserID:            in.UserID,
		TestID:            test.ID,
		BookingDate:       date,
		SlotTime:          in.SlotTime,
		PatientName:       in.PatientName,
		PatientPhone:      in.PatientPhone,
		PatientEmail:      in.PatientEmail,
		HomeCollection:    in.HomeCollection,
		CollectionAddress: in.CollectionAddress,
		ReferralType:      referral,
		DoctorName:        in.DoctorName,
		Status:            string(domain.InitialStatus()),
		PaymentStatus:     string(domain.PaymentPending),
	}

	if err := uc.repo.AdmitBooking(ctx, b, uc.capacity); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Notificação (melhor-esforço) + auditoria
	// --------------------------------------------------
	uc.notifyCreated(b, test)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) notifyCreated(b *models.Booking, test *models.Test) {
	when := fmt.Sprintf("%s, %s", b.BookingDate.Format("02/01/2006"), b.SlotTime)

	uc.notifier.Dispatch(notify.Message{
		Recipient: b.PatientEmail,
		Subject:   fmt.Sprintf("Reserva recebida - %s", uc.labName),
		Body: fmt.Sprintf(
			"Olá %s,\n\nSua reserva do exame %s foi registrada para %s.\nEm breve confirmaremos o atendimento.\n\n%s",
			b.PatientName, test.Name, when, uc.labName,
		),
	})

	uc.notifier.Dispatch(notify.Message{
		Recipient: uc.labEmail,
		Subject:   fmt.Sprintf("Nova reserva #%d", b.ID),
		Body: fmt.Sprintf(
			"Paciente: %s (%s)\nExame: %s\nQuando: %s",
			b.PatientName, b.PatientPhone, test.Name, when,
		),
	})
}
