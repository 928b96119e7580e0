package models

import "time"

// Dados do paciente são copiados no momento da reserva (snapshot legal
// de quem foi atendido); edições posteriores do perfil não os alteram.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	TestID uint `gorm:"not null" json:"test_id"`
	Test   Test `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"test"`

	BookingDate time.Time `gorm:"type:date;not null;index:idx_bookings_date_slot" json:"booking_date"`
	SlotTime    string    `gorm:"size:20;not null;index:idx_bookings_date_slot" json:"slot_time"`

	PatientName  string `gorm:"size:100;not null" json:"patient_name"`
	PatientPhone string `gorm:"size:15;not null" json:"patient_phone"`
	PatientEmail string `gorm:"size:120" json:"patient_email"`

	HomeCollection    bool   `gorm:"default:false" json:"home_collection"`
	CollectionAddress string `gorm:"type:text" json:"collection_address"`

	ReferralType string `gorm:"size:20;default:'self'" json:"referral_type"`
	DoctorName   string `gorm:"size:100" json:"doctor_name"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
