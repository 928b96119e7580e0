package dto

import (
	"time"

	"github.com/lifecarelabs/lab-portal/internal/models"
)

// Linha achatada da listagem da equipe (e do export CSV): traz o nome
// do exame junto, sem expor o objeto inteiro.
type BookingListItem struct {
	ID uint `json:"id"`

	BookingDate string `json:"booking_date"`
	SlotTime    string `json:"slot_time"`

	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`

	TestName  string  `json:"test_name"`
	TestPrice float64 `json:"test_price"`

	HomeCollection bool   `json:"home_collection"`
	Status         string `json:"status"`
	PaymentStatus  string `json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
}

func ToBookingListItem(b models.Booking) BookingListItem {
	return BookingListItem{
		ID:             b.ID,
		BookingDate:    b.BookingDate.Format("2006-01-02"),
		SlotTime:       b.SlotTime,
		PatientName:    b.PatientName,
		PatientPhone:   b.PatientPhone,
		TestName:       b.Test.Name,
		TestPrice:      b.Test.Price,
		HomeCollection: b.HomeCollection,
		Status:         b.Status,
		PaymentStatus:  b.PaymentStatus,
		CreatedAt:      b.CreatedAt,
	}
}

func ToBookingList(bookings []models.Booking) []BookingListItem {
	out := make([]BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingListItem(b))
	}
	return out
}
