package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

const (
	InteractionLike    = "like"
	InteractionDislike = "dislike"
	InteractionApply   = "apply"
)

var ErrInvalidInteraction = errors.New("invalid interaction kind")

type InteractionRepository interface {
	// ListJobIDs returns the set of jobs the user has already acted on,
	// regardless of kind. Ranking excludes these before scoring.
	ListJobIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)

	Record(ctx context.Context, userID, jobID uuid.UUID, kind string) error
}

type PostgresInteractionRepository struct {
	db database.DB
}

func NewPostgresInteractionRepository(db database.DB) *PostgresInteractionRepository {
	return &PostgresInteractionRepository{db: db}
}

func (r *PostgresInteractionRepository) ListJobIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT job_id FROM job_interactions WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	return out, rows.Err()
}

func (r *PostgresInteractionRepository) Record(ctx context.Context, userID, jobID uuid.UUID, kind string) error {
	switch kind {
	case InteractionLike, InteractionDislike, InteractionApply:
	default:
		return ErrInvalidInteraction
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO job_interactions (user_id, job_id, kind)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, job_id, kind) DO NOTHING`,
		userID, jobID, kind,
	)
	return err
}
