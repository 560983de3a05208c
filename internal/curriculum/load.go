// Package curriculum reads the learning plan document: a JSON array of weeks,
// each holding days, tasks, resources and a notes prompt.
package curriculum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// ErrNoPlan is returned when the plan document is missing or unreadable.
var ErrNoPlan = errors.New("no learning plan available")

// Load reads and parses the plan at path. A missing file is reported as
// ErrNoPlan; malformed content wraps ErrNoPlan together with the parse error.
func Load(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrNoPlan, path, err)
	}
	plan, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNoPlan, path, err)
	}
	return plan, nil
}

// Parse decodes a plan document. Unknown fields are ignored and absent
// fields keep their zero value.
func Parse(r io.Reader) (*domain.Plan, error) {
	var weeks []domain.Week
	if err := json.NewDecoder(r).Decode(&weeks); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &domain.Plan{Weeks: weeks}, nil
}
