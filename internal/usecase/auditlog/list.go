package auditlog

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type ListOutput struct {
	Items []models.AuditLog `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type List struct {
	reader audit.Reader
}

func NewList(reader audit.Reader) *List {
	return &List{reader: reader}
}

func (uc *List) Execute(ctx context.Context, f audit.Filter) (*ListOutput, error) {
	f.Normalize()

	items, total, err := uc.reader.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.AuditLog{}
	}
	return &ListOutput{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}
