package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/schedule"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

func seedBooking(t *testing.T, repo *AppointmentGormRepository, profID, clientID, serviceID uint, start time.Time, status string) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		ProfessionalID: profID,
		ClientID:       clientID,
		ServiceID:      serviceID,
		StartTime:      start,
		DurationMin:    60,
		EndTime:        start.Add(time.Hour),
		Status:         status,
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap
}

func TestAppointmentRepo_OverlapQueries(t *testing.T) {
	conn := newTestDB(t)
	repo := NewAppointmentGormRepository(conn)
	ctx := context.Background()

	_, prof := seedProfessional(t, conn, "p@example.com")
	client := models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, conn.Create(&client).Error)
	svc := models.Service{ProfessionalID: prof.ID, Name: "Corte", DurationMin: 60, Active: true}
	require.NoError(t, conn.Create(&svc).Error)

	loc, _ := time.LoadLocation("America/Sao_Paulo")
	day := time.Date(2030, 1, 7, 0, 0, 0, 0, loc)

	seedBooking(t, repo, prof.ID, client.ID, svc.ID, day.Add(10*time.Hour), string(domain.StatusPending))
	seedBooking(t, repo, prof.ID, client.ID, svc.ID, day.Add(14*time.Hour), string(domain.StatusCancelled))
	// começa na véspera e invade o dia
	seedBooking(t, repo, prof.ID, client.ID, svc.ID, day.Add(-30*time.Minute), string(domain.StatusConfirmed))

	apps, err := repo.ListAppointmentsOverlapping(ctx, prof.ID, day, day.Add(24*time.Hour), domain.ExcludedFromOccupancy())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.True(t, apps[0].StartTime.Equal(day.Add(-30*time.Minute)))
	assert.True(t, apps[1].StartTime.Equal(day.Add(10*time.Hour)))

	// intervalo que só encosta no agendamento não conta
	apps, err = repo.ListAppointmentsOverlapping(ctx, prof.ID, day.Add(11*time.Hour), day.Add(12*time.Hour), domain.ExcludedFromOccupancy())
	require.NoError(t, err)
	assert.Empty(t, apps)

	block := models.Block{ProfessionalID: prof.ID, StartTime: day.Add(-2 * time.Hour), EndTime: day.Add(time.Hour)}
	require.NoError(t, conn.Create(&block).Error)

	blocks, err := repo.ListBlocksOverlapping(ctx, prof.ID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, blocks, 1)

	blocks, err = repo.ListBlocksOverlapping(ctx, prof.ID, day.Add(24*time.Hour), day.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestAppointmentRepo_ActiveSlotIsUnique(t *testing.T) {
	conn := newTestDB(t)
	repo := NewAppointmentGormRepository(conn)

	_, prof := seedProfessional(t, conn, "p@example.com")
	client := models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, conn.Create(&client).Error)
	svc := models.Service{ProfessionalID: prof.ID, Name: "Corte", DurationMin: 60, Active: true}
	require.NoError(t, conn.Create(&svc).Error)

	start := time.Date(2030, 1, 7, 13, 0, 0, 0, time.UTC)
	first := seedBooking(t, repo, prof.ID, client.ID, svc.ID, start, string(domain.StatusPending))

	dup := &models.Appointment{
		ProfessionalID: prof.ID,
		ClientID:       client.ID,
		ServiceID:      svc.ID,
		StartTime:      start,
		DurationMin:    60,
		EndTime:        start.Add(time.Hour),
		Status:         string(domain.StatusPending),
	}
	err := repo.CreateAppointment(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, httperr.IsSlotConstraint(err))

	// cancelado libera o horário
	first.Status = string(domain.StatusCancelled)
	require.NoError(t, repo.UpdateAppointment(context.Background(), first))

	dup.ID = 0
	require.NoError(t, repo.CreateAppointment(context.Background(), dup))
}

func TestAppointmentRepo_NotFoundAndGuest(t *testing.T) {
	conn := newTestDB(t)
	repo := NewAppointmentGormRepository(conn)
	ctx := context.Background()

	_, err := repo.GetProfessional(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetAppointment(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	wh, err := repo.GetActiveWorkingHours(ctx, 1, 0)
	require.NoError(t, err)
	assert.Nil(t, wh)

	guest := models.User{Name: "Convidado", Email: "guest@example.com", PasswordHash: "hash"}
	u1, err := repo.GetOrCreateGuestClient(ctx, guest)
	require.NoError(t, err)
	u2, err := repo.GetOrCreateGuestClient(ctx, guest)
	require.NoError(t, err)

	assert.Equal(t, u1.ID, u2.ID)
	assert.Equal(t, models.UserTypeClient, u1.Type)
}

func TestScheduleRepo_UpsertWorkingHours(t *testing.T) {
	conn := newTestDB(t)
	repo := NewScheduleGormRepository(conn)
	ctx := context.Background()

	_, prof := seedProfessional(t, conn, "p@example.com")

	first := &models.WorkingHours{ProfessionalID: prof.ID, Weekday: 0, StartTime: "09:00", EndTime: "12:00", Active: true}
	require.NoError(t, repo.UpsertWorkingHours(ctx, first))

	second := &models.WorkingHours{ProfessionalID: prof.ID, Weekday: 0, StartTime: "13:00", EndTime: "18:00", Active: true}
	require.NoError(t, repo.UpsertWorkingHours(ctx, second))

	list, err := repo.ListWorkingHours(ctx, prof.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "13:00", list[0].StartTime)
	assert.Equal(t, first.ID, second.ID)
}

func TestScheduleRepo_Blocks(t *testing.T) {
	conn := newTestDB(t)
	repo := NewScheduleGormRepository(conn)
	ctx := context.Background()

	_, prof := seedProfessional(t, conn, "p@example.com")

	start := time.Date(2030, 1, 7, 8, 0, 0, 0, time.UTC)
	b := &models.Block{ProfessionalID: prof.ID, StartTime: start, EndTime: start.Add(5 * time.Hour), Reason: "médico"}
	require.NoError(t, repo.CreateBlock(ctx, b))

	got, err := repo.GetBlock(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "médico", got.Reason)

	require.NoError(t, repo.DeleteBlock(ctx, b.ID))
	_, err = repo.GetBlock(ctx, b.ID)
	assert.ErrorIs(t, err, schedule.ErrNotFound)
}

func TestActorResolver(t *testing.T) {
	conn := newTestDB(t)
	r := NewActorResolver(conn)
	ctx := context.Background()

	profUser, prof := seedProfessional(t, conn, "p@example.com")
	client := models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, conn.Create(&client).Error)

	a, err := r.Resolve(ctx, profUser.ID)
	require.NoError(t, err)
	assert.Equal(t, actor.Professional{UserID: profUser.ID, ProfessionalID: prof.ID}, a)

	a, err = r.Resolve(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, actor.Client{UserID: client.ID}, a)

	require.NoError(t, conn.Model(&client).Update("active", false).Error)
	_, err = r.Resolve(ctx, client.ID)
	assert.ErrorIs(t, err, ErrInactiveUser)
}
