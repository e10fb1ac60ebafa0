package canvas

import (
	"strings"
	"time"

	"github.com/stockpredictor/backend/internal/errs"
)

// Snapshot is an immutable export of a canvas layout, produced once per
// explicit save. Persisting it is the caller's job.
type Snapshot struct {
	Name      string         `json:"name"`
	Widgets   []PlacedWidget `json:"widgets"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Save flattens the model into a named Snapshot. The widget list is copied
// by value, so later edits to the live canvas never alter a snapshot that
// was already handed out. A blank or whitespace-only name is rejected.
func (m *Model) Save(name string) (Snapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Snapshot{}, errs.NewValidationError("model name must not be empty")
	}
	return Snapshot{
		Name:      name,
		Widgets:   m.Widgets(),
		CreatedAt: m.now(),
	}, nil
}
