package appointment

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/db"
	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-pro/internal/lock"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// segunda-feira
const testDay = "2030-01-07"

type fixture struct {
	db     *gorm.DB
	repo   *repository.AppointmentGormRepository
	locker lock.Locker
	loc    *time.Location

	profUser models.User
	prof     models.Professional
	client   models.User
	other    models.User
	svc      models.Service

	profActor   actor.Actor
	clientActor actor.Actor
	otherActor  actor.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	conn, err := db.Connect("file::memory:", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	f := &fixture{
		db:     conn,
		repo:   repository.NewAppointmentGormRepository(conn),
		locker: lock.NewLocal(),
		loc:    loc,
	}

	f.profUser = models.User{Name: "João", Email: "joao@example.com", PasswordHash: "x", Type: models.UserTypeProfessional}
	require.NoError(t, conn.Create(&f.profUser).Error)

	f.prof = models.Professional{UserID: f.profUser.ID, Timezone: "America/Sao_Paulo"}
	require.NoError(t, conn.Create(&f.prof).Error)

	f.client = models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, conn.Create(&f.client).Error)

	f.other = models.User{Name: "Bia", Email: "bia@example.com", PasswordHash: "x"}
	require.NoError(t, conn.Create(&f.other).Error)

	f.svc = models.Service{ProfessionalID: f.prof.ID, Name: "Corte", DurationMin: 60, Price: 50, Active: true}
	require.NoError(t, conn.Create(&f.svc).Error)

	f.workingHours(t, 0, "09:00", "12:00")

	f.profActor = actor.Professional{UserID: f.profUser.ID, ProfessionalID: f.prof.ID}
	f.clientActor = actor.Client{UserID: f.client.ID}
	f.otherActor = actor.Client{UserID: f.other.ID}

	return f
}

// now fixo bem antes do dia de teste
func (f *fixture) now() time.Time {
	return time.Date(2030, 1, 1, 8, 0, 0, 0, f.loc)
}

func (f *fixture) at(hm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", testDay+" "+hm, f.loc)
	if err != nil {
		panic(err)
	}
	return t
}

func (f *fixture) workingHours(t *testing.T, weekday int, start, end string) {
	t.Helper()
	repo := repository.NewScheduleGormRepository(f.db)
	require.NoError(t, repo.UpsertWorkingHours(t.Context(), &models.WorkingHours{
		ProfessionalID: f.prof.ID,
		Weekday:        weekday,
		StartTime:      start,
		EndTime:        end,
		Active:         true,
	}))
}

func (f *fixture) book(t *testing.T, hm string, durationMin int, status string) models.Appointment {
	t.Helper()
	start := f.at(hm)
	ap := models.Appointment{
		ProfessionalID: f.prof.ID,
		ClientID:       f.client.ID,
		ServiceID:      f.svc.ID,
		StartTime:      start,
		DurationMin:    durationMin,
		EndTime:        start.Add(time.Duration(durationMin) * time.Minute),
		Status:         status,
	}
	require.NoError(t, f.repo.CreateAppointment(t.Context(), &ap))
	return ap
}

func (f *fixture) block(t *testing.T, start, end time.Time) {
	t.Helper()
	b := models.Block{ProfessionalID: f.prof.ID, StartTime: start, EndTime: end, Reason: "pessoal"}
	require.NoError(t, f.db.Create(&b).Error)
}

func (f *fixture) createUC() *CreateAppointment {
	uc := NewCreateAppointment(f.repo, f.locker, nil, nil)
	uc.b.now = f.now
	return uc
}

func (f *fixture) updateUC() *UpdateAppointment {
	uc := NewUpdateAppointment(f.repo, f.locker, nil)
	uc.b.now = f.now
	uc.p.now = f.now
	return uc
}

func (f *fixture) cancelUC() *CancelAppointment {
	uc := NewCancelAppointment(f.repo, f.locker, nil)
	uc.p.now = f.now
	return uc
}

func (f *fixture) statusUC() *ChangeStatus {
	uc := NewChangeStatus(f.repo, f.locker, nil)
	uc.p.now = f.now
	return uc
}

func assertKind(t *testing.T, err error, kind httperr.Kind) {
	t.Helper()
	k, ok := httperr.KindOf(err)
	require.True(t, ok, "expected business error, got %v", err)
	assert.Equal(t, kind, k)
}
