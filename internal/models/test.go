package models

import "time"

type Test struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:150;not null" json:"name"`

	CategoryID uint         `json:"category_id"`
	Category   TestCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"type:text" json:"description"`
	SampleType  string  `gorm:"size:50;default:'Blood'" json:"sample_type"`
	ReportTime  string  `gorm:"size:50;default:'24 Hours'" json:"report_time"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
