package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *ScheduleGormRepository) UpsertWorkingHours(
	ctx context.Context,
	wh *models.WorkingHours,
) error {

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "professional_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "active", "updated_at"}),
		}).
		Create(wh).Error
	if err != nil {
		return err
	}

	// no caminho de update o id devolvido não é confiável em todos os bancos
	return r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", wh.ProfessionalID, wh.Weekday).
		First(wh).Error
}

func (r *ScheduleGormRepository) ListWorkingHours(
	ctx context.Context,
	professionalID uint,
	onlyActive bool,
) ([]models.WorkingHours, error) {

	q := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID)

	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var list []models.WorkingHours
	if err := q.
		Order("weekday ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Blocks
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBlock(
	ctx context.Context,
	b *models.Block,
) error {
	b.StartTime = b.StartTime.UTC()
	b.EndTime = b.EndTime.UTC()
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ScheduleGormRepository) GetBlock(
	ctx context.Context,
	id uint,
) (*models.Block, error) {

	var b models.Block
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *ScheduleGormRepository) DeleteBlock(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Block{}, id).Error
}

func (r *ScheduleGormRepository) ListBlocks(
	ctx context.Context,
	professionalID uint,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
