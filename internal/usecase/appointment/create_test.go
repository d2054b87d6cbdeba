package appointment

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

func (f *fixture) input(hm string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ProfessionalID: f.prof.ID,
		ServiceID:      f.svc.ID,
		DateTime:       testDay + " " + hm,
		Notes:          "primeira vez",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	f := newFixture(t)

	out, err := f.createUC().Execute(t.Context(), f.clientActor, f.input("10:00"))
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, string(domain.StatusPending), out.Status)
	assert.Equal(t, 60, out.Duration)
	assert.True(t, out.DateTime.Equal(f.at("10:00")))
	assert.True(t, out.EndTime.Equal(f.at("11:00")))
	assert.Equal(t, "João", out.ProfessionalName)
	assert.Equal(t, "Ana", out.ClientName)
	assert.Equal(t, "Corte", out.ServiceName)

	assert.Equal(t, []string{"09:00", "11:00"}, f.slots(t, f.svc.ID, testDay))
}

func TestCreateAppointment_DurationIsSnapshot(t *testing.T) {
	f := newFixture(t)

	out, err := f.createUC().Execute(t.Context(), f.clientActor, f.input("09:00"))
	require.NoError(t, err)

	require.NoError(t, f.db.Model(&models.Service{}).
		Where("id = ?", f.svc.ID).
		Update("duration_min", 120).Error)

	var ap models.Appointment
	require.NoError(t, f.db.First(&ap, out.ID).Error)
	assert.Equal(t, 60, ap.DurationMin)
}

func TestCreateAppointment_Validation(t *testing.T) {
	f := newFixture(t)
	uc := f.createUC()

	_, err := uc.Execute(t.Context(), f.profActor, f.input("10:00"))
	assertKind(t, err, httperr.KindForbidden)

	in := f.input("10:00")
	in.ProfessionalID = 999
	_, err = uc.Execute(t.Context(), f.clientActor, in)
	assertKind(t, err, httperr.KindNotFound)

	in = f.input("10:00")
	in.ServiceID = 999
	_, err = uc.Execute(t.Context(), f.clientActor, in)
	assertKind(t, err, httperr.KindNotFound)

	in = f.input("10:00")
	in.DateTime = "amanhã"
	_, err = uc.Execute(t.Context(), f.clientActor, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_time"))

	in = f.input("10:00")
	in.DateTime = "2029-12-31 10:00"
	_, err = uc.Execute(t.Context(), f.clientActor, in)
	assert.True(t, httperr.IsBusiness(err, "in_the_past"))

	_, err = uc.Execute(t.Context(), f.clientActor, f.input("08:00"))
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))

	// termina depois do expediente
	_, err = uc.Execute(t.Context(), f.clientActor, f.input("11:30"))
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateAppointment_MinAdvance(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Model(&f.prof).Update("min_advance_minutes", 120).Error)

	uc := f.createUC()
	uc.b.now = func() time.Time { return f.at("08:30") }

	_, err := uc.Execute(t.Context(), f.clientActor, f.input("10:00"))
	assert.True(t, httperr.IsBusiness(err, "too_soon"))

	_, err = uc.Execute(t.Context(), f.clientActor, f.input("11:00"))
	require.NoError(t, err)
}

func TestCreateAppointment_ConflictsWithBookingAndBlock(t *testing.T) {
	f := newFixture(t)
	uc := f.createUC()

	_, err := uc.Execute(t.Context(), f.clientActor, f.input("10:00"))
	require.NoError(t, err)

	_, err = uc.Execute(t.Context(), f.otherActor, f.input("10:00"))
	assertKind(t, err, httperr.KindSlotConflict)

	// sobreposição parcial
	_, err = uc.Execute(t.Context(), f.otherActor, f.input("10:30"))
	assertKind(t, err, httperr.KindSlotConflict)

	// encostar no fim não é conflito
	_, err = uc.Execute(t.Context(), f.otherActor, f.input("11:00"))
	require.NoError(t, err)

	f.block(t, f.at("09:15"), f.at("09:45"))
	_, err = uc.Execute(t.Context(), f.otherActor, f.input("09:00"))
	assertKind(t, err, httperr.KindSlotConflict)
}

func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	f := newFixture(t)
	uc := f.createUC()

	const n = 5

	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		mu        sync.Mutex
		successes int
		conflicts int
		others    []error
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := uc.Execute(t.Context(), f.clientActor, f.input("10:00"))

			mu.Lock()
			defer mu.Unlock()
			switch kind, _ := httperr.KindOf(err); {
			case err == nil:
				successes++
			case kind == httperr.KindSlotConflict:
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateGuestAppointment(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateGuestAppointment(f.createUC())

	in := CreateGuestAppointmentInput{
		CreateAppointmentInput: f.input("09:00"),
		ClientName:             "Carla",
		ClientEmail:            " Carla@Example.com ",
		ClientPhone:            "11999999999",
	}

	first, err := uc.Execute(t.Context(), in)
	require.NoError(t, err)
	assert.Equal(t, "Carla", first.ClientName)

	in.CreateAppointmentInput = f.input("10:00")
	second, err := uc.Execute(t.Context(), in)
	require.NoError(t, err)
	assert.Equal(t, first.ClientID, second.ClientID)

	var guest models.User
	require.NoError(t, f.db.First(&guest, first.ClientID).Error)
	assert.Equal(t, "carla@example.com", guest.Email)
	assert.Equal(t, models.UserTypeClient, guest.Type)
	assert.NotEmpty(t, guest.PasswordHash)

	// serviço inexistente não cria usuário
	in.ClientEmail = "ninguem@example.com"
	in.ServiceID = 999
	_, err = uc.Execute(t.Context(), in)
	assertKind(t, err, httperr.KindNotFound)

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Where("email = ?", "ninguem@example.com").Count(&count).Error)
	assert.Zero(t, count)
}
