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
	"github.com/BruksfildServices01/agenda-pro/internal/notification"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProfessionalID uint
	ServiceID      uint

	// RFC3339 ou "YYYY-MM-DD HH:MM" no timezone do profissional
	DateTime string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	b      booking
	audit  *audit.Dispatcher
	notify *notification.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	notify *notification.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		b:      newBooking(repo, locker),
		audit:  audit,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	a actor.Actor,
	in CreateAppointmentInput,
) (*dto.AppointmentDTO, error) {

	// só clientes agendam para si mesmos
	client, ok := a.(actor.Client)
	if !ok {
		return nil, httperr.ErrForbidden("not_a_client")
	}

	user, err := uc.repo.GetUser(ctx, client.UserID)
	if err != nil {
		return nil, err
	}

	return uc.book(ctx, a, user, in)
}

// book é o caminho comum ao agendamento autenticado e ao de convidado.
func (uc *CreateAppointment) book(
	ctx context.Context,
	a actor.Actor,
	client *models.User,
	in CreateAppointmentInput,
) (*dto.AppointmentDTO, error) {

	// --------------------------------------------------
	// 1️⃣ Profissional e serviço
	// --------------------------------------------------
	prof, svc, err := uc.b.loadCatalog(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone do profissional
	// --------------------------------------------------
	start, err := timezone.ParseDateTimeIn(prof.Timezone, in.DateTime)
	if err != nil {
		return nil, httperr.ErrInvalid("invalid_date_time")
	}

	// --------------------------------------------------
	// 3️⃣ Passado, antecedência e expediente
	// --------------------------------------------------
	if err := uc.b.validateSlot(ctx, prof, start, svc.DurationMin); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Criação sob lock (duração copiada do serviço)
	// --------------------------------------------------
	ap := &models.Appointment{
		ProfessionalID: prof.ID,
		ClientID:       client.ID,
		ServiceID:      svc.ID,
		StartTime:      start,
		DurationMin:    svc.DurationMin,
		EndTime:        start.Add(time.Duration(svc.DurationMin) * time.Minute),
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.b.reserve(ctx, ap, func(tx domain.Repository) error {
		return tx.CreateAppointment(ctx, ap)
	}); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria e confirmação (fora da transação)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfessionalID: &prof.ID,
		UserID:         auditUser(a),
		TraceID:        actor.TraceID(ctx),
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
		Metadata: map[string]any{
			"service_id": svc.ID,
			"client_id":  client.ID,
			"date_time":  start,
			"duration":   svc.DurationMin,
		},
	})

	loc := timezone.Location(prof.Timezone)

	uc.notify.AppointmentCreated(notification.AppointmentConfirmation{
		ClientName:       client.Name,
		ClientEmail:      client.Email,
		ServiceName:      svc.Name,
		ProfessionalName: professionalName(prof),
		DateTime:         start.In(loc),
		DurationMin:      svc.DurationMin,
	})

	ap.Professional = *prof
	ap.Client = *client
	ap.Service = *svc

	out := dto.FromAppointment(*ap, loc)
	return &out, nil
}

func professionalName(p *models.Professional) string {
	if p.User.Name != "" {
		return p.User.Name
	}
	return "Profissional"
}
