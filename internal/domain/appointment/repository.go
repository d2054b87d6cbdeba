package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// ErrNotFound é devolvido pelo repositório quando o registro não existe.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Catalog --------
	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Users --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetOrCreateGuestClient(
		ctx context.Context,
		guest models.User,
	) (*models.User, error)

	// -------- Availability --------

	// GetActiveWorkingHours devolve nil, nil quando o profissional não atende no dia.
	GetActiveWorkingHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListAppointmentsOverlapping(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
		excludeStatuses []string,
	) ([]models.Appointment, error)

	ListBlocksOverlapping(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Block, error)

	// -------- Appointment (create / conflict) --------

	// WithinBookingTx executa fn numa transação serializada por profissional.
	WithinBookingTx(
		ctx context.Context,
		professionalID uint,
		fn func(tx Repository) error,
	) error

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
		limit int,
		offset int,
	) ([]models.Appointment, error)

	ListAppointmentsForProfessional(
		ctx context.Context,
		professionalID uint,
		limit int,
		offset int,
	) ([]models.Appointment, error)
}
