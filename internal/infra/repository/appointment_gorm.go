package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// notFound traduz o erro do gorm para o erro do domínio.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *AppointmentGormRepository) GetOrCreateGuestClient(
	ctx context.Context,
	guest models.User,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", guest.Email).
		First(&user).Error

	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	guest.Type = models.UserTypeClient
	guest.Active = true

	if err := r.db.WithContext(ctx).Create(&guest).Error; err != nil {
		// outro pedido criou o mesmo e-mail no meio do caminho
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.WithContext(ctx).
				Where("email = ?", guest.Email).
				First(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, err
	}

	return &guest, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ? AND active = ?", professionalID, weekday, true).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *AppointmentGormRepository) ListAppointmentsOverlapping(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
	excludeStatuses []string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND start_time < ? AND end_time > ?",
			professionalID,
			end.UTC(),
			start.UTC(),
		)

	if len(excludeStatuses) > 0 {
		q = q.Where("status NOT IN ?", excludeStatuses)
	}

	var apps []models.Appointment
	if err := q.
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListBlocksOverlapping(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND start_time < ? AND end_time > ?",
			professionalID,
			end.UTC(),
			start.UTC(),
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// WithinBookingTx abre uma transação; no Postgres ela também segura um
// advisory lock do profissional até o commit.
func (r *AppointmentGormRepository) WithinBookingTx(
	ctx context.Context,
	professionalID uint,
	fn func(tx domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(professionalID)).Error; err != nil {
				return err
			}
		}
		return fn(&AppointmentGormRepository{db: tx})
	})
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ap.StartTime = ap.StartTime.UTC()
	ap.EndTime = ap.EndTime.UTC()
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ap, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ap.StartTime = ap.StartTime.UTC()
	ap.EndTime = ap.EndTime.UTC()
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) listWithNames(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Professional.User").
		Preload("Client").
		Preload("Service")
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
	limit int,
	offset int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.listWithNames(ctx).
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForProfessional(
	ctx context.Context,
	professionalID uint,
	limit int,
	offset int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.listWithNames(ctx).
		Where("professional_id = ?", professionalID).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
