package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile aggregates everything the matching core reads about a candidate.
// Headline and Location stay nullable because the underlying rows allow NULL
// and the scorers treat absence as "contributes nothing".
type Profile struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Name     string
	Headline *string
	Location *string

	Skills     []string
	Experience []ExperienceEntry
	Education  []EducationEntry
}

type ExperienceEntry struct {
	Position  string
	Company   string
	StartDate *time.Time
	EndDate   *time.Time
}

type EducationEntry struct {
	Degree string
	School string
}
