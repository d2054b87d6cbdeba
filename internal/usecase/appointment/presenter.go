package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

// presenter completa o agendamento com os nomes e o timezone do profissional.
type presenter struct {
	repo domain.Repository
	now  func() time.Time
}

func newPresenter(repo domain.Repository) presenter {
	return presenter{repo: repo, now: time.Now}
}

func (p presenter) present(ctx context.Context, ap *models.Appointment) (*dto.AppointmentDTO, error) {
	prof, err := p.repo.GetProfessional(ctx, ap.ProfessionalID)
	if err != nil {
		return nil, err
	}
	svc, err := p.repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, err
	}
	client, err := p.repo.GetUser(ctx, ap.ClientID)
	if err != nil {
		return nil, err
	}

	ap.Professional = *prof
	ap.Service = *svc
	ap.Client = *client

	out := dto.FromAppointment(*ap, timezone.Location(prof.Timezone))
	return &out, nil
}
