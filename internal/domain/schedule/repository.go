package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	// UpsertWorkingHours grava o expediente do dia, substituindo o existente.
	UpsertWorkingHours(
		ctx context.Context,
		wh *models.WorkingHours,
	) error

	ListWorkingHours(
		ctx context.Context,
		professionalID uint,
		onlyActive bool,
	) ([]models.WorkingHours, error)

	CreateBlock(
		ctx context.Context,
		b *models.Block,
	) error

	GetBlock(
		ctx context.Context,
		id uint,
	) (*models.Block, error)

	DeleteBlock(
		ctx context.Context,
		id uint,
	) error

	ListBlocks(
		ctx context.Context,
		professionalID uint,
	) ([]models.Block, error)
}
