package models

import "time"

type ContactEnquiry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:120" json:"email"`
	Phone   string `gorm:"size:15" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
