package appointment

import (
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Transition aplica a ação correspondente ao status de destino.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	switch to {
	case StatusConfirmed:
		return Confirm(ap, now)
	case StatusCompleted:
		return Complete(ap, now)
	case StatusCancelled:
		return Cancel(ap, now)
	default:
		return httperr.ErrInvalid("invalid_state")
	}
}

// Reschedule move o agendamento mantendo a duração reservada.
func Reschedule(ap *models.Appointment, start time.Time) error {
	if Status(ap.Status).Terminal() {
		return httperr.ErrInvalid("invalid_state")
	}

	ap.StartTime = start
	ap.EndTime = start.Add(time.Duration(ap.DurationMin) * time.Minute)
	return nil
}

// ===============================
// Authorization
// ===============================

func IsClientOf(a actor.Actor, ap *models.Appointment) bool {
	return a != nil && a.ID() == ap.ClientID
}

func IsOwnerOf(a actor.Actor, ap *models.Appointment) bool {
	p, ok := actor.AsProfessional(a)
	return ok && p.ProfessionalID == ap.ProfessionalID
}

// CanModify: apenas o cliente do agendamento ou o profissional dono.
func CanModify(a actor.Actor, ap *models.Appointment) error {
	if IsClientOf(a, ap) || IsOwnerOf(a, ap) {
		return nil
	}
	return httperr.ErrForbidden("forbidden")
}

// CanSetStatus: o profissional confirma, conclui e cancela; o cliente só cancela.
func CanSetStatus(a actor.Actor, ap *models.Appointment, to Status) error {
	if err := CanModify(a, ap); err != nil {
		return err
	}
	if IsOwnerOf(a, ap) || to == StatusCancelled {
		return nil
	}
	return httperr.ErrForbidden("forbidden")
}
