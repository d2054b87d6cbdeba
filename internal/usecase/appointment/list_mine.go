package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 200
)

// ListMyAppointments devolve a agenda do profissional ou os agendamentos
// do cliente, conforme o ator.
type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	a actor.Actor,
	skip int,
	limit int,
) ([]dto.AppointmentDTO, error) {

	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if skip < 0 {
		skip = 0
	}

	var (
		apps []models.Appointment
		err  error
	)

	switch v := a.(type) {
	case actor.Professional:
		apps, err = uc.repo.ListAppointmentsForProfessional(ctx, v.ProfessionalID, limit, skip)
	default:
		apps, err = uc.repo.ListAppointmentsForClient(ctx, a.ID(), limit, skip)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.FromAppointment(ap, timezone.Location(ap.Professional.Timezone)))
	}
	return out, nil
}
