package catalog

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
)

// ParsePrice accepts JSON numbers and numeric strings.
func ParsePrice(raw any) (float64, error) {
	if raw == nil {
		return 0, httperr.Validation("Title and price are required")
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return 0, httperr.Validation("Title and price are required")
	}
	if _, ok := raw.(bool); ok {
		return 0, httperr.Validation("Price must be a number")
	}

	price, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, httperr.Validation("Price must be a number")
	}
	if price < 0 {
		return 0, httperr.Validation("Price must not be negative")
	}
	return price, nil
}

// DedupeIDs keeps the first occurrence of every non-zero id.
func DedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
