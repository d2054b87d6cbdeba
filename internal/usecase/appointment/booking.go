package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/lock"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

// tempo máximo esperando o lock do profissional antes de desistir
const lockWait = 5 * time.Second

// ======================================================
// BOOKING GUARD
// ======================================================

// booking concentra a regra que impede dois agendamentos no mesmo horário:
// lock por profissional, transação com nova checagem e, por último, o
// índice único do banco.
type booking struct {
	repo   domain.Repository
	locker lock.Locker
	now    func() time.Time
}

func newBooking(repo domain.Repository, locker lock.Locker) booking {
	return booking{repo: repo, locker: locker, now: time.Now}
}

// loadCatalog busca profissional e serviço e garante que o serviço é dele.
func (b booking) loadCatalog(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) (*models.Professional, *models.Service, error) {

	prof, err := b.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, nil, notFoundAs(err, "professional_not_found")
	}

	svc, err := b.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, nil, notFoundAs(err, "service_not_found")
	}
	if svc.ProfessionalID != prof.ID {
		return nil, nil, httperr.ErrNotFound("service_not_found")
	}
	if !svc.Active {
		return nil, nil, httperr.ErrInvalid("service_inactive")
	}
	if svc.DurationMin <= 0 {
		return nil, nil, httperr.ErrInvalid("invalid_duration")
	}

	return prof, svc, nil
}

// validateSlot confere passado, antecedência mínima e expediente do dia.
func (b booking) validateSlot(
	ctx context.Context,
	prof *models.Professional,
	start time.Time,
	durationMin int,
) error {

	now := b.now()
	if !start.After(now) {
		return httperr.ErrInvalid("in_the_past")
	}

	if prof.MinAdvanceMinutes > 0 &&
		start.Before(now.Add(time.Duration(prof.MinAdvanceMinutes)*time.Minute)) {
		return httperr.ErrInvalid("too_soon")
	}

	local := start.In(timezone.Location(prof.Timezone))

	wh, err := b.repo.GetActiveWorkingHours(ctx, prof.ID, schedule.Weekday(local))
	if err != nil {
		return err
	}
	if wh == nil {
		return httperr.ErrInvalid("outside_working_hours")
	}

	window, err := schedule.Window(local, wh.StartTime, wh.EndTime)
	if err != nil {
		return err
	}

	// ocupação é conferida depois, sob o lock
	candidate := availability.NewInterval(local, time.Duration(durationMin)*time.Minute)
	if !availability.IsFree(window, candidate, nil) {
		return httperr.ErrInvalid("outside_working_hours")
	}
	return nil
}

// reserve grava o agendamento com o horário garantido livre.
func (b booking) reserve(
	ctx context.Context,
	ap *models.Appointment,
	write func(tx domain.Repository) error,
) error {
	return b.serialized(ctx, ap.ProfessionalID, func(tx domain.Repository) error {
		if err := assertFree(ctx, tx, ap); err != nil {
			return err
		}
		return write(tx)
	})
}

// mutate relê o agendamento dentro da transação do profissional e aplica
// change sobre a cópia atual. Quando change devolve recheck=true o novo
// horário é conferido de novo antes de gravar.
func (b booking) mutate(
	ctx context.Context,
	current *models.Appointment,
	change func(ap *models.Appointment) (recheck bool, err error),
) (*models.Appointment, error) {

	var saved *models.Appointment

	err := b.serialized(ctx, current.ProfessionalID, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, current.ID)
		if err != nil {
			return notFoundAs(err, "appointment_not_found")
		}

		recheck, err := change(ap)
		if err != nil {
			return err
		}

		if recheck {
			if err := assertFree(ctx, tx, ap); err != nil {
				return err
			}
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		saved = ap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// serialized roda fn sob o lock do profissional e dentro da transação de agenda.
// Toda escrita em agendamentos passa por aqui.
func (b booking) serialized(
	ctx context.Context,
	professionalID uint,
	fn func(tx domain.Repository) error,
) error {

	lockCtx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()

	unlock, err := b.locker.Lock(lockCtx, lock.BookingKey(professionalID))
	if err != nil {
		if errors.Is(err, lock.ErrTimeout) {
			return httperr.ErrConflict("time_conflict")
		}
		return err
	}
	defer unlock()

	err = b.repo.WithinBookingTx(ctx, professionalID, fn)

	if httperr.IsSlotConstraint(err) {
		return httperr.ErrConflict("time_conflict")
	}
	return err
}

// assertFree repete a checagem de ocupação dentro da transação,
// ignorando o próprio agendamento no caso de remarcação.
func assertFree(ctx context.Context, tx domain.Repository, ap *models.Appointment) error {
	apps, err := tx.ListAppointmentsOverlapping(
		ctx,
		ap.ProfessionalID,
		ap.StartTime,
		ap.EndTime,
		domain.ExcludedFromOccupancy(),
	)
	if err != nil {
		return err
	}
	for _, other := range apps {
		if other.ID != ap.ID {
			return httperr.ErrConflict("time_conflict")
		}
	}

	blocks, err := tx.ListBlocksOverlapping(ctx, ap.ProfessionalID, ap.StartTime, ap.EndTime)
	if err != nil {
		return err
	}
	if len(blocks) > 0 {
		return httperr.ErrConflict("time_conflict")
	}
	return nil
}

// ======================================================
// HELPERS
// ======================================================

func notFoundAs(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

func auditUser(a actor.Actor) *uint {
	if a == nil {
		return nil
	}
	id := a.ID()
	return &id
}
