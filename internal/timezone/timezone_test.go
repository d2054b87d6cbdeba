package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParseDateIn(t *testing.T) {
	d, err := ParseDateIn("UTC", "2030-03-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDateIn("UTC", "04/03/2030")
	assert.Error(t, err)
}

func TestParseDateTimeIn(t *testing.T) {
	local, err := ParseDateTimeIn("UTC", "2030-03-04 10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 3, 4, 10, 30, 0, 0, time.UTC), local)

	rfc, err := ParseDateTimeIn("UTC", "2030-03-04T13:30:00+03:00")
	require.NoError(t, err)
	assert.True(t, rfc.Equal(local))
}
