package appointment

import (
	"slices"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return slices.Contains(statuses, s)
}

// Terminal indica que o agendamento não aceita mais alterações.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Occupies indica se o agendamento ainda ocupa a agenda.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

var statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ===============================
// Validations
// ===============================

// CanTransition valida a mudança de status contra a tabela de transições.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrInvalid("invalid_state")
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func CanConfirm(current Status) error {
	return CanTransition(current, StatusConfirmed)
}

func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusPending
}

// ExcludedFromOccupancy lista os status ignorados no cálculo de horários.
func ExcludedFromOccupancy() []string {
	var out []string
	for _, s := range statuses {
		if !s.Occupies() {
			out = append(out, string(s))
		}
	}
	return out
}
