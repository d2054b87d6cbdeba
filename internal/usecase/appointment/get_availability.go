package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute calcula os horários livres do profissional no dia para o serviço.
// Dia sem expediente não é erro: devolve slots vazio.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	empty := &domain.AvailabilityResult{Date: in.Date, Slots: []string{}}

	// --------------------------------------------------
	// Profissional e data no timezone dele
	// --------------------------------------------------
	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, notFoundAs(err, "professional_not_found")
	}

	date, err := timezone.ParseDateIn(prof.Timezone, in.Date)
	if err != nil {
		return nil, httperr.ErrInvalid("invalid_date")
	}

	// --------------------------------------------------
	// Serviço
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, notFoundAs(err, "service_not_found")
	}
	if svc.ProfessionalID != prof.ID {
		return nil, httperr.ErrNotFound("service_not_found")
	}

	step := time.Duration(svc.DurationMin) * time.Minute
	if step <= 0 {
		return empty, nil
	}

	// --------------------------------------------------
	// Expediente do dia
	// --------------------------------------------------
	wh, err := uc.repo.GetActiveWorkingHours(ctx, prof.ID, schedule.Weekday(date))
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return empty, nil
	}

	window, err := schedule.Window(date, wh.StartTime, wh.EndTime)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Ocupação
	// --------------------------------------------------
	occupied, err := uc.occupancy(ctx, prof.ID, date)
	if err != nil {
		return nil, err
	}

	return &domain.AvailabilityResult{
		Date:  in.Date,
		Slots: availability.Format(availability.Slots(window, step, occupied)),
	}, nil
}

// occupancy junta agendamentos ativos e bloqueios que tocam o dia.
// Cada agendamento usa a própria duração gravada, não a do serviço consultado.
func (uc *GetAvailability) occupancy(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]availability.Interval, error) {

	dayStart, dayEnd := schedule.DayBounds(date)

	apps, err := uc.repo.ListAppointmentsOverlapping(
		ctx,
		professionalID,
		dayStart,
		dayEnd,
		domain.ExcludedFromOccupancy(),
	)
	if err != nil {
		return nil, err
	}

	blocks, err := uc.repo.ListBlocksOverlapping(ctx, professionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := make([]availability.Interval, 0, len(apps)+len(blocks))
	for _, ap := range apps {
		out = append(out, availability.NewInterval(
			ap.StartTime,
			time.Duration(ap.DurationMin)*time.Minute,
		))
	}
	for _, b := range blocks {
		out = append(out, availability.Interval{Start: b.StartTime, End: b.EndTime})
	}
	return out, nil
}
