package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// ProgressKey is the diskv key holding the serialized progress record.
const ProgressKey = "userProgress"

// DiskvProgressRepo stores UserProgress as one JSON document in a diskv
// directory.
type DiskvProgressRepo struct {
	d *diskv.Diskv
}

// NewDiskvProgressRepo opens (or creates) a diskv store rooted at basePath.
func NewDiskvProgressRepo(basePath string) *DiskvProgressRepo {
	return &DiskvProgressRepo{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		TempDir:      filepath.Join(basePath, ".tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (r *DiskvProgressRepo) Load(ctx context.Context) (*domain.UserProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.d.Has(ProgressKey) {
		return nil, fmt.Errorf("progress: %w", ErrNotFound)
	}
	val, err := r.d.Read(ProgressKey)
	if err != nil {
		return nil, fmt.Errorf("reading progress: %w", err)
	}

	var p domain.UserProgress
	if err := json.Unmarshal(val, &p); err != nil {
		return nil, fmt.Errorf("decoding progress: %w", err)
	}
	p.Normalize()
	return &p, nil
}

func (r *DiskvProgressRepo) Save(ctx context.Context, p *domain.UserProgress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := *p
	if rec.SchemaVersion == 0 {
		rec.SchemaVersion = domain.ProgressSchemaVersion
	}
	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}
	if err := r.d.Write(ProgressKey, val); err != nil {
		return fmt.Errorf("writing progress: %w", err)
	}
	return nil
}

var _ ProgressRepo = (*DiskvProgressRepo)(nil)
