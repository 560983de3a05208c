package repository

import (
	"context"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// ProgressRepo persists the single UserProgress record. Load returns a
// wrapped ErrNotFound when the backend holds no record.
type ProgressRepo interface {
	Load(ctx context.Context) (*domain.UserProgress, error)
	Save(ctx context.Context, p *domain.UserProgress) error
}
