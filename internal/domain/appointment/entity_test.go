package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	all := []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
	for _, from := range all {
		for _, to := range all {
			err := CanTransition(from, to)
			if allowed[[2]Status{from, to}] {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", from, to)
			}
		}
	}
}

func TestStatusOccupancy(t *testing.T) {
	assert.Equal(t, []string{"cancelled"}, ExcludedFromOccupancy())

	assert.True(t, Status("pending").Valid())
	assert.False(t, Status("lost").Valid())
	assert.True(t, StatusCompleted.Occupies())
	assert.False(t, StatusCancelled.Occupies())
}

func TestTransition_SetsTimestamps(t *testing.T) {
	now := time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(InitialStatus())}

	require.NoError(t, Transition(ap, StatusConfirmed, now))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, &now, ap.ConfirmedAt)

	require.NoError(t, Transition(ap, StatusCompleted, now))
	assert.Equal(t, &now, ap.CompletedAt)

	assert.Error(t, Transition(ap, StatusCancelled, now))
	assert.Error(t, Transition(ap, StatusPending, now))
}

func TestReschedule_KeepsSnapshotDuration(t *testing.T) {
	start := time.Date(2030, 1, 7, 14, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusPending), DurationMin: 45}

	require.NoError(t, Reschedule(ap, start))
	assert.Equal(t, start.Add(45*time.Minute), ap.EndTime)

	ap.Status = string(StatusCancelled)
	assert.Error(t, Reschedule(ap, start))
}

func TestAuthorization(t *testing.T) {
	ap := &models.Appointment{ClientID: 10, ProfessionalID: 2}

	client := actor.Client{UserID: 10}
	owner := actor.Professional{UserID: 20, ProfessionalID: 2}
	stranger := actor.Client{UserID: 11}
	otherPro := actor.Professional{UserID: 21, ProfessionalID: 3}

	assert.NoError(t, CanModify(client, ap))
	assert.NoError(t, CanModify(owner, ap))
	assert.Error(t, CanModify(stranger, ap))
	assert.Error(t, CanModify(otherPro, ap))
	assert.Error(t, CanModify(nil, ap))

	assert.NoError(t, CanSetStatus(client, ap, StatusCancelled))
	assert.True(t, httperr.IsBusiness(CanSetStatus(client, ap, StatusConfirmed), "forbidden"))
	assert.NoError(t, CanSetStatus(owner, ap, StatusConfirmed))
	assert.NoError(t, CanSetStatus(owner, ap, StatusCompleted))
}
