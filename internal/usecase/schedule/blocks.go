package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type BlockInput struct {
	StartTime time.Time
	EndTime   time.Time
	Reason    string
}

// ======================================================
// CREATE
// ======================================================

type CreateBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBlock(repo domain.Repository, audit *audit.Dispatcher) *CreateBlock {
	return &CreateBlock{repo: repo, audit: audit, now: time.Now}
}

func (uc *CreateBlock) Execute(
	ctx context.Context,
	a actor.Actor,
	in BlockInput,
) (*models.Block, error) {

	prof, ok := actor.AsProfessional(a)
	if !ok {
		return nil, httperr.ErrForbidden("not_a_professional")
	}

	if err := domain.ValidateBlock(in.StartTime, in.EndTime, uc.now()); err != nil {
		return nil, err
	}

	b := &models.Block{
		ProfessionalID: prof.ProfessionalID,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Reason:         in.Reason,
	}

	if err := uc.repo.CreateBlock(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: &prof.ProfessionalID,
		UserID:         &prof.UserID,
		TraceID:        actor.TraceID(ctx),
		Action:         "block_created",
		Entity:         "block",
		EntityID:       &b.ID,
		Metadata: map[string]any{
			"start_time": b.StartTime,
			"end_time":   b.EndTime,
			"reason":     b.Reason,
		},
	})

	return b, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBlock(repo domain.Repository, audit *audit.Dispatcher) *DeleteBlock {
	return &DeleteBlock{repo: repo, audit: audit}
}

func (uc *DeleteBlock) Execute(
	ctx context.Context,
	a actor.Actor,
	blockID uint,
) error {

	prof, ok := actor.AsProfessional(a)
	if !ok {
		return httperr.ErrForbidden("not_a_professional")
	}

	b, err := uc.repo.GetBlock(ctx, blockID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrNotFound("block_not_found")
		}
		return err
	}

	if b.ProfessionalID != prof.ProfessionalID {
		return httperr.ErrForbidden("forbidden")
	}

	if err := uc.repo.DeleteBlock(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: &prof.ProfessionalID,
		UserID:         &prof.UserID,
		TraceID:        actor.TraceID(ctx),
		Action:         "block_deleted",
		Entity:         "block",
		EntityID:       &b.ID,
	})

	return nil
}

// ======================================================
// LIST
// ======================================================

type ListBlocks struct {
	repo domain.Repository
}

func NewListBlocks(repo domain.Repository) *ListBlocks {
	return &ListBlocks{repo: repo}
}

func (uc *ListBlocks) Execute(ctx context.Context, professionalID uint) ([]models.Block, error) {
	return uc.repo.ListBlocks(ctx, professionalID)
}
