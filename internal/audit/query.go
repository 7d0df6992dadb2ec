package audit

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time

	Page  int
	Limit int
}

// Normalize clamps paging to 1-based pages of at most 200 rows.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Reader lists recorded events, newest first.
type Reader interface {
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (m *Memory) List(_ context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	m.mu.Lock()
	var rows []models.AuditLog
	for i, ev := range m.events {
		at := m.times[i]
		if f.Action != "" && ev.Action != f.Action {
			continue
		}
		if f.Entity != "" && ev.Entity != f.Entity {
			continue
		}
		if f.From != nil && at.Before(*f.From) {
			continue
		}
		if f.To != nil && !at.Before(*f.To) {
			continue
		}
		rows = append(rows, models.AuditLog{
			ID:         uint(i + 1),
			CustomerID: ev.CustomerID,
			Action:     ev.Action,
			Entity:     ev.Entity,
			EntityID:   ev.EntityID,
			Metadata:   metadataString(ev.Metadata),
			CreatedAt:  at,
		})
	}
	m.mu.Unlock()

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })

	total := int64(len(rows))
	start := f.Offset()
	if start >= len(rows) {
		return []models.AuditLog{}, total, nil
	}
	end := start + f.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total, nil
}

func metadataString(meta any) string {
	switch m := meta.(type) {
	case nil:
		return ""
	case string:
		return m
	case []byte:
		return string(m)
	default:
		b, err := json.Marshal(m)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

var _ Reader = (*Logger)(nil)
var _ Reader = (*Memory)(nil)
