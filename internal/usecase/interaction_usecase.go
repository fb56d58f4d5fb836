package usecase

import (
	"context"
	"errors"

	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrJobNotFound = errors.New("job not found")

type InteractionUsecase interface {
	Record(ctx context.Context, userID, jobID uuid.UUID, kind string) error
}

type Interaction struct {
	jobs         repository.JobRepository
	interactions repository.InteractionRepository
	cache        MatchCache
	logger       *zap.Logger
}

func NewInteractionUsecase(jobs repository.JobRepository, interactions repository.InteractionRepository, cache MatchCache, logger *zap.Logger) *Interaction {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interaction{jobs: jobs, interactions: interactions, cache: cache, logger: logger}
}

// Record stores one like/dislike/apply and drops the user's cached match
// pages, since the exclusion set just changed.
func (u *Interaction) Record(ctx context.Context, userID, jobID uuid.UUID, kind string) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return ErrJobNotFound
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		u.logger.Error("interaction job lookup failed",
			zap.String("user_id", userID.String()),
			zap.String("job_id", jobID.String()),
			zap.Error(err))
		return ErrInternal
	}
	if !exists {
		return ErrJobNotFound
	}

	if err := u.interactions.Record(ctx, userID, jobID, kind); err != nil {
		if errors.Is(err, repository.ErrInvalidInteraction) {
			return ErrInvalidInput
		}
		u.logger.Error("interaction record failed",
			zap.String("user_id", userID.String()),
			zap.String("job_id", jobID.String()),
			zap.Error(err))
		return ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, matchCacheUserPattern(userID)); err != nil {
			u.logger.Debug("match cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}
