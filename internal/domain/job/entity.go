package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a read-only job posting as seen by the matching core. Optional
// columns are coalesced to empty strings at the repository boundary so the
// scorers never have to nil-check.
type Job struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
	CreatedAt   time.Time
}
