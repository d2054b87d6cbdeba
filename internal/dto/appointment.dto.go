package dto

import (
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// AppointmentDTO é o agendamento com os nomes já resolvidos para a tela.
type AppointmentDTO struct {
	ID             uint      `json:"id"`
	ProfessionalID uint      `json:"professional_id"`
	ClientID       uint      `json:"client_id"`
	ServiceID      uint      `json:"service_id"`
	DateTime       time.Time `json:"date_time"`
	Duration       int       `json:"duration"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`

	ProfessionalName string `json:"professional_name"`
	ClientName       string `json:"client_name"`
	ServiceName      string `json:"service_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromAppointment converte os horários para loc; as relações precisam estar carregadas
// para os nomes aparecerem.
func FromAppointment(ap models.Appointment, loc *time.Location) AppointmentDTO {
	if loc == nil {
		loc = time.UTC
	}

	return AppointmentDTO{
		ID:               ap.ID,
		ProfessionalID:   ap.ProfessionalID,
		ClientID:         ap.ClientID,
		ServiceID:        ap.ServiceID,
		DateTime:         ap.StartTime.In(loc),
		Duration:         ap.DurationMin,
		EndTime:          ap.EndTime.In(loc),
		Status:           ap.Status,
		Notes:            ap.Notes,
		ProfessionalName: ap.Professional.User.Name,
		ClientName:       ap.Client.Name,
		ServiceName:      ap.Service.Name,
		CreatedAt:        ap.CreatedAt,
		UpdatedAt:        ap.UpdatedAt,
	}
}
