package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/lock"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// ChangeStatus atende as rotas de confirmar e concluir.
type ChangeStatus struct {
	repo  domain.Repository
	b     booking
	audit *audit.Dispatcher
	p     presenter
}

func NewChangeStatus(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		b:     newBooking(repo, locker),
		audit: audit,
		p:     newPresenter(repo),
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	a actor.Actor,
	appointmentID uint,
	to domain.Status,
) (*dto.AppointmentDTO, error) {

	current, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	if err := domain.CanSetStatus(a, current, to); err != nil {
		return nil, err
	}

	ap, err := uc.b.mutate(ctx, current, func(ap *models.Appointment) (bool, error) {
		return false, domain.Transition(ap, to, uc.p.now())
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: &ap.ProfessionalID,
		UserID:         auditUser(a),
		TraceID:        actor.TraceID(ctx),
		Action:         "appointment_" + string(to),
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return uc.p.present(ctx, ap)
}
