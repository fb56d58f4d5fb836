package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrProfileNotFound marks a user with no stored profile row. Callers use it
// to take the unscored recent-jobs fallback instead of failing.
var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	var p profile.Profile

	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, COALESCE(name, ''), headline, location
		 FROM profiles
		 WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Headline, &p.Location); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}

	skills, err := r.skills(ctx, p.ID)
	if err != nil {
		return profile.Profile{}, err
	}
	p.Skills = skills

	experience, err := r.experience(ctx, p.ID)
	if err != nil {
		return profile.Profile{}, err
	}
	p.Experience = experience

	education, err := r.education(ctx, p.ID)
	if err != nil {
		return profile.Profile{}, err
	}
	p.Education = education

	return p, nil
}

func (r *PostgresProfileRepository) skills(ctx context.Context, profileID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill FROM profile_skills WHERE profile_id = $1 ORDER BY skill`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresProfileRepository) experience(ctx context.Context, profileID uuid.UUID) ([]profile.ExperienceEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(position, ''), COALESCE(company, ''), start_date, end_date
		 FROM work_experience
		 WHERE profile_id = $1
		 ORDER BY start_date DESC NULLS LAST`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.ExperienceEntry, 0)
	for rows.Next() {
		var e profile.ExperienceEntry
		if err := rows.Scan(&e.Position, &e.Company, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresProfileRepository) education(ctx context.Context, profileID uuid.UUID) ([]profile.EducationEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(degree, ''), COALESCE(school, '')
		 FROM education
		 WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.EducationEntry, 0)
	for rows.Next() {
		var e profile.EducationEntry
		if err := rows.Scan(&e.Degree, &e.School); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
