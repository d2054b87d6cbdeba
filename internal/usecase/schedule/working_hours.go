package schedule

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type WorkingHoursInput struct {
	Weekday   int
	StartTime string
	EndTime   string
	Active    *bool
}

// UpsertWorkingHours grava o expediente de um dia; repetir o dia substitui.
type UpsertWorkingHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpsertWorkingHours(repo domain.Repository, audit *audit.Dispatcher) *UpsertWorkingHours {
	return &UpsertWorkingHours{repo: repo, audit: audit}
}

func (uc *UpsertWorkingHours) Execute(
	ctx context.Context,
	a actor.Actor,
	in WorkingHoursInput,
) (*models.WorkingHours, error) {

	prof, ok := actor.AsProfessional(a)
	if !ok {
		return nil, httperr.ErrForbidden("not_a_professional")
	}

	if err := domain.ValidateWorkingHours(in.Weekday, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	wh := &models.WorkingHours{
		ProfessionalID: prof.ProfessionalID,
		Weekday:        in.Weekday,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Active:         active,
	}

	if err := uc.repo.UpsertWorkingHours(ctx, wh); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: &prof.ProfessionalID,
		UserID:         &prof.UserID,
		TraceID:        actor.TraceID(ctx),
		Action:         "working_hours_updated",
		Entity:         "working_hours",
		EntityID:       &wh.ID,
		Metadata: map[string]any{
			"weekday":    wh.Weekday,
			"start_time": wh.StartTime,
			"end_time":   wh.EndTime,
			"active":     wh.Active,
		},
	})

	return wh, nil
}

type ListWorkingHours struct {
	repo domain.Repository
}

func NewListWorkingHours(repo domain.Repository) *ListWorkingHours {
	return &ListWorkingHours{repo: repo}
}

// Execute com onlyActive=true é a visão pública do expediente.
func (uc *ListWorkingHours) Execute(
	ctx context.Context,
	professionalID uint,
	onlyActive bool,
) ([]models.WorkingHours, error) {
	return uc.repo.ListWorkingHours(ctx, professionalID, onlyActive)
}
