package models

import "time"

// Report guarda apenas o hash da senha de acesso; o texto puro é
// mostrado uma única vez, na emissão.
type Report struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReportID    string `gorm:"size:20;uniqueIndex;not null" json:"report_id"`
	TokenNumber string `gorm:"size:50;uniqueIndex;not null" json:"token_number"`

	UserID *uint `json:"user_id,omitempty"`

	PatientName string `gorm:"size:100;not null" json:"patient_name"`
	Age         int    `json:"age"`
	Gender      string `gorm:"size:10" json:"gender"`
	DoctorName  string `gorm:"size:100" json:"doctor_name"`
	TestName    string `gorm:"size:200" json:"test_name"`

	PasswordHash string `gorm:"size:256;not null" json:"-"`
	FilePath     string `gorm:"size:300;not null" json:"-"`
	Remarks      string `gorm:"type:text" json:"remarks"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
