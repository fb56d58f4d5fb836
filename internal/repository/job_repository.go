package repository

import (
	"context"
	"fmt"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// CandidateFilter shapes the bounded candidate pull for one ranking request.
// SkillKeywords and Location are coarse recall filters: a job matching ANY
// keyword (or the location substring) is pulled. Precision comes from
// scoring, not from this query.
type CandidateFilter struct {
	SkillKeywords []string
	Location      string
	Limit         int
}

type JobRepository interface {
	// ListCandidates returns recent jobs matching the coarse filter,
	// newest first, bounded by filter.Limit.
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]job.Job, error)

	// ListRecent returns the most recently created jobs, used as the
	// fallback for users with no stored profile.
	ListRecent(ctx context.Context, limit, offset int) ([]job.Job, error)

	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''), COALESCE(description, ''), created_at`

func (r *PostgresJobRepository) ListCandidates(ctx context.Context, filter CandidateFilter) ([]job.Job, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}

	var conds []string
	var args []any

	for _, kw := range filter.SkillKeywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		args = append(args, "%"+kw+"%")
		conds = append(conds, fmt.Sprintf("description ILIKE $%d", len(args)))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, "%"+loc+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " OR ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *PostgresJobRepository) ListRecent(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
