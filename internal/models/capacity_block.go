package models

import "time"

// CapacityBlock marca um dia inteiro ou um slot específico como
// indisponível. TimeSlot vazio é a sentinela de "dia inteiro" e participa
// do mesmo índice único, garantindo no máximo um bloqueio por chave.
type CapacityBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_capacity_date_slot" json:"date"`
	TimeSlot string    `gorm:"size:20;not null;default:'';uniqueIndex:idx_capacity_date_slot" json:"time_slot,omitempty"`
	Reason   string    `gorm:"size:200;default:'Unavailable'" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *CapacityBlock) WholeDay() bool {
	return b.TimeSlot == ""
}
