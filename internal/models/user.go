package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:15;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'patient'" json:"role"`
	Address      string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
