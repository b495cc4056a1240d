package service

import (
	"math"

	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	// maxPage keeps (page-1)*limit within a 32-bit OFFSET.
	maxPage = math.MaxInt32 / maxPageLimit
)

// normalizePage applies the list defaults: 1-based page capped at maxPage,
// limit defaulting to 20 and capped at 100.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func newListResult[T any](items []T, total int64, page, limit int) *ports.ListResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &ports.ListResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
