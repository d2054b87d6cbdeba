package audit

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type Logger struct {
	db        *gorm.DB
	sanitizer *Sanitizer
}

func New(db *gorm.DB, sanitizer *Sanitizer) *Logger {
	if sanitizer == nil {
		sanitizer = NewSanitizer(nil, 0)
	}
	return &Logger{db: db, sanitizer: sanitizer}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	entry := models.AuditLog{
		ProfessionalID: ev.ProfessionalID,
		UserID:         ev.UserID,
		TraceID:        ev.TraceID,
		Action:         ev.Action,
		Entity:         ev.Entity,
		EntityID:       ev.EntityID,
		Metadata:       l.sanitizer.Metadata(ev.Metadata),
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}
