package models

import "time"

// Appointment guarda a duração copiada do serviço no momento da reserva;
// EndTime é StartTime + DurationMin e existe para as consultas de sobreposição.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `gorm:"uniqueIndex:idx_appointments_active_slot,where:status <> 'cancelled';not null" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClientID uint `gorm:"index;not null" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StartTime   time.Time `gorm:"uniqueIndex:idx_appointments_active_slot,where:status <> 'cancelled';not null" json:"date_time"`
	DurationMin int       `gorm:"not null" json:"duration"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
