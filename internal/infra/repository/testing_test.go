package repository

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/db"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Connect("file::memory:", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func seedProfessional(t *testing.T, conn *gorm.DB, email string) (models.User, models.Professional) {
	t.Helper()

	u := models.User{Name: "Prof " + email, Email: email, PasswordHash: "x", Type: models.UserTypeProfessional, Active: true}
	require.NoError(t, conn.Create(&u).Error)

	p := models.Professional{UserID: u.ID, Timezone: "America/Sao_Paulo"}
	require.NoError(t, conn.Create(&p).Error)
	return u, p
}
