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

// CancelAppointment cancela sem apagar: o registro fica no histórico e
// o horário volta a ficar livre.
type CancelAppointment struct {
	repo  domain.Repository
	b     booking
	audit *audit.Dispatcher
	p     presenter
}

func NewCancelAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		b:     newBooking(repo, locker),
		audit: audit,
		p:     newPresenter(repo),
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	a actor.Actor,
	appointmentID uint,
) (*dto.AppointmentDTO, error) {

	current, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	if err := domain.CanModify(a, current); err != nil {
		return nil, err
	}

	// o status é decidido sobre a versão relida sob o lock
	ap, err := uc.b.mutate(ctx, current, func(ap *models.Appointment) (bool, error) {
		return false, domain.Cancel(ap, uc.p.now())
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: &ap.ProfessionalID,
		UserID:         auditUser(a),
		TraceID:        actor.TraceID(ctx),
		Action:         "appointment_cancelled",
		Entity:         "appointment",
		EntityID:       &ap.ID,
		Metadata:       map[string]any{"by": actor.Role(a)},
	})

	return uc.p.present(ctx, ap)
}
