package models

import "time"

// WorkingHours guarda o expediente de um dia da semana (0 = segunda).
// StartTime/EndTime são horários de parede no formato HH:MM.
type WorkingHours struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"uniqueIndex:idx_working_hours_day;not null" json:"professional_id"`

	Weekday int `gorm:"uniqueIndex:idx_working_hours_day;not null" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Active    bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
