package audit

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

// Logger persists events as AuditLog rows.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Dispatch(ctx context.Context, ev Event) {
	if err := l.Log(ctx, ev); err != nil {
		zap.L().Warn("audit write failed",
			zap.String("action", ev.Action),
			zap.Error(err),
		)
	}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	row := models.AuditLog{
		CustomerID: ev.CustomerID,
		Action:     ev.Action,
		Entity:     ev.Entity,
		EntityID:   ev.EntityID,
		Metadata:   metadataString(ev.Metadata),
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

var _ Sink = (*Logger)(nil)
var _ Sink = (*Memory)(nil)
