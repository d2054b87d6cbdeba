package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/lock"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

// UpdateAppointmentInput: campos nil ficam como estão.
type UpdateAppointmentInput struct {
	DateTime *string
	Notes    *string
	Status   *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	b     booking
	audit *audit.Dispatcher
	p     presenter
}

func NewUpdateAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		b:     newBooking(repo, locker),
		audit: audit,
		p:     newPresenter(repo),
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	a actor.Actor,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*dto.AppointmentDTO, error) {

	current, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	if err := domain.CanModify(a, current); err != nil {
		return nil, err
	}

	var to *domain.Status
	if in.Status != nil {
		s := domain.Status(*in.Status)
		if !s.Valid() {
			return nil, httperr.ErrInvalid("invalid_status")
		}
		to = &s
	}

	// --------------------------------------------------
	// Novo horário: expediente e bloqueios antes do lock
	// --------------------------------------------------
	var start *time.Time
	validated := false
	if in.DateTime != nil {
		prof, err := uc.repo.GetProfessional(ctx, current.ProfessionalID)
		if err != nil {
			return nil, err
		}

		parsed, err := timezone.ParseDateTimeIn(prof.Timezone, *in.DateTime)
		if err != nil {
			return nil, httperr.ErrInvalid("invalid_date_time")
		}
		start = &parsed

		if !parsed.Equal(current.StartTime) {
			if err := checkMove(domain.Status(current.Status), to); err != nil {
				return nil, err
			}
			if err := uc.b.validateSlot(ctx, prof, parsed, current.DurationMin); err != nil {
				return nil, err
			}
			validated = true
		}
	}

	// --------------------------------------------------
	// Aplicação sobre a versão atual, sob o lock
	// --------------------------------------------------
	var changes map[string]any

	ap, err := uc.b.mutate(ctx, current, func(ap *models.Appointment) (bool, error) {
		changes = map[string]any{}

		if err := domain.CanModify(a, ap); err != nil {
			return false, err
		}

		if in.Notes != nil {
			ap.Notes = *in.Notes
			changes["notes"] = true
		}

		// remarcação antes do status: terminal não remarca
		moved := start != nil && !start.Equal(ap.StartTime)
		if moved {
			if !validated {
				// o horário mudou entre a leitura e o lock
				return false, httperr.ErrConflict("time_conflict")
			}
			if err := checkMove(domain.Status(ap.Status), to); err != nil {
				return false, err
			}
			if err := domain.Reschedule(ap, *start); err != nil {
				return false, err
			}
			changes["date_time"] = *start
		}

		if to != nil && *to != domain.Status(ap.Status) {
			if err := domain.CanSetStatus(a, ap, *to); err != nil {
				return false, err
			}
			if err := domain.Transition(ap, *to, uc.p.now()); err != nil {
				return false, err
			}
			changes["status"] = *to
		}

		return moved, nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: &ap.ProfessionalID,
		UserID:         auditUser(a),
		TraceID:        actor.TraceID(ctx),
		Action:         "appointment_updated",
		Entity:         "appointment",
		EntityID:       &ap.ID,
		Metadata:       changes,
	})

	return uc.p.present(ctx, ap)
}

// checkMove recusa remarcar um agendamento encerrado ou encerrá-lo
// no mesmo pedido que o remarca.
func checkMove(from domain.Status, to *domain.Status) error {
	if from.Terminal() {
		return httperr.ErrInvalid("invalid_state")
	}
	if to != nil && to.Terminal() {
		return httperr.ErrInvalid("invalid_update")
	}
	return nil
}
