package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/lock"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// interleave roda before uma única vez, logo antes de pedir o lock,
// simulando uma escrita concorrente entre a leitura e a gravação.
type interleave struct {
	inner  lock.Locker
	before func()
}

func (l *interleave) Lock(ctx context.Context, key string) (func(), error) {
	if fn := l.before; fn != nil {
		l.before = nil
		fn()
	}
	return l.inner.Lock(ctx, key)
}

func TestUpdateAppointment_RescheduleDoesNotReviveCancelled(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", 60, string(domain.StatusPending))

	uc := f.updateUC()
	uc.b.locker = &interleave{
		inner: f.locker,
		before: func() {
			_, err := f.cancelUC().Execute(t.Context(), f.profActor, ap.ID)
			require.NoError(t, err)
		},
	}

	_, err := uc.Execute(t.Context(), f.clientActor, ap.ID, UpdateAppointmentInput{DateTime: ptr(testDay + " 11:00")})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	var stored models.Appointment
	require.NoError(t, f.db.First(&stored, ap.ID).Error)
	assert.Equal(t, "cancelled", stored.Status)
	assert.NotNil(t, stored.CancelledAt)
	assert.True(t, stored.StartTime.Equal(f.at("10:00")))
}

func TestUpdateAppointment_NotesKeepConcurrentStatus(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", 60, string(domain.StatusPending))

	uc := f.updateUC()
	uc.b.locker = &interleave{
		inner: f.locker,
		before: func() {
			_, err := f.statusUC().Execute(t.Context(), f.profActor, ap.ID, domain.StatusConfirmed)
			require.NoError(t, err)
		},
	}

	out, err := uc.Execute(t.Context(), f.clientActor, ap.ID, UpdateAppointmentInput{Notes: ptr("sem pressa")})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", out.Status)
	assert.Equal(t, "sem pressa", out.Notes)
}

func TestChangeStatus_DoesNotOverwriteCancel(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", 60, string(domain.StatusPending))

	uc := f.statusUC()
	uc.b.locker = &interleave{
		inner: f.locker,
		before: func() {
			_, err := f.cancelUC().Execute(t.Context(), f.clientActor, ap.ID)
			require.NoError(t, err)
		},
	}

	_, err := uc.Execute(t.Context(), f.profActor, ap.ID, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	var stored models.Appointment
	require.NoError(t, f.db.First(&stored, ap.ID).Error)
	assert.Equal(t, "cancelled", stored.Status)
	assert.Nil(t, stored.ConfirmedAt)
}

func TestCancelAppointment_AfterConcurrentComplete(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00", 60, string(domain.StatusConfirmed))

	uc := f.cancelUC()
	uc.b.locker = &interleave{
		inner: f.locker,
		before: func() {
			_, err := f.statusUC().Execute(t.Context(), f.profActor, ap.ID, domain.StatusCompleted)
			require.NoError(t, err)
		},
	}

	_, err := uc.Execute(t.Context(), f.clientActor, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	var stored models.Appointment
	require.NoError(t, f.db.First(&stored, ap.ID).Error)
	assert.Equal(t, "completed", stored.Status)
	assert.Nil(t, stored.CancelledAt)
}
