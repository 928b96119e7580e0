package models

type TestCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Icon        string `gorm:"size:10;default:'🧪'" json:"icon"`
	Description string `gorm:"type:text" json:"description"`
}
