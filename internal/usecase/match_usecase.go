package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"jobboard/internal/matching"
	"jobboard/internal/observability"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	defaultMatchLimit = 20
	maxMatchLimit     = 50
)

type MatchParams struct {
	Limit    int
	Offset   int
	MinScore float64
}

// MatchPage is one ranked page of matches. Fallback marks the unscored
// recent-jobs path taken for users without a stored profile.
type MatchPage struct {
	Matches  []matching.ScoredMatch `json:"matches"`
	Total    int                    `json:"total"`
	Fallback bool                   `json:"fallback"`
}

type MatchUsecase interface {
	Rank(ctx context.Context, userID uuid.UUID, params MatchParams) (MatchPage, error)
}

// Match is the ranking and pagination engine. Each Rank call is independent:
// candidates are pulled, scored sequentially, filtered, sorted and paginated
// with no state shared between concurrent requests.
type Match struct {
	jobs         repository.JobRepository
	profiles     repository.ProfileRepository
	interactions repository.InteractionRepository
	scorer       *matching.Scorer
	cache        MatchCache

	logger  *zap.Logger
	metrics *observability.MatchMetrics

	candidatePool int
	cacheTTL      time.Duration
}

func NewMatchUsecase(
	jobs repository.JobRepository,
	profiles repository.ProfileRepository,
	interactions repository.InteractionRepository,
	scorer *matching.Scorer,
	cache MatchCache,
	logger *zap.Logger,
	metrics *observability.MatchMetrics,
	candidatePool int,
	cacheTTL time.Duration,
) *Match {
	if logger == nil {
		logger = zap.NewNop()
	}
	if candidatePool <= 0 {
		candidatePool = 1000
	}
	return &Match{
		jobs:          jobs,
		profiles:      profiles,
		interactions:  interactions,
		scorer:        scorer,
		cache:         cache,
		logger:        logger,
		metrics:       metrics,
		candidatePool: candidatePool,
		cacheTTL:      cacheTTL,
	}
}

func (u *Match) Rank(ctx context.Context, userID uuid.UUID, params MatchParams) (MatchPage, error) {
	if userID == uuid.Nil {
		return MatchPage{}, ErrUnauthorized
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultMatchLimit
	}
	if limit > maxMatchLimit {
		limit = maxMatchLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}
	if minScore > 1 {
		minScore = 1
	}

	ctx, span := observability.Tracer().Start(ctx, "match.rank")
	defer span.End()
	span.SetAttributes(
		attribute.String("match.user_id", userID.String()),
		attribute.Int("match.limit", limit),
		attribute.Int("match.offset", offset),
		attribute.Float64("match.min_score", minScore),
	)

	start := time.Now()
	result := "ok"
	defer func() {
		if u.metrics == nil {
			return
		}
		u.metrics.Duration.Record(ctx, time.Since(start).Seconds())
		u.metrics.Requests.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}()

	cacheKey := matchCacheKey(userID, limit, offset, minScore)
	if u.cache != nil {
		var cached MatchPage
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			result = "cache_hit"
			return cached, nil
		}
	}

	prof, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			page, fbErr := u.fallbackRecent(ctx, limit, offset)
			if fbErr != nil {
				result = "error"
				u.logger.Error("match fallback fetch failed", zap.String("user_id", userID.String()), zap.Error(fbErr))
				return MatchPage{}, fmt.Errorf("fetch recent jobs: %w", fbErr)
			}
			result = "fallback"
			span.SetAttributes(attribute.Int("match.found", len(page.Matches)))
			return page, nil
		}
		result = "error"
		u.logger.Error("match profile fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return MatchPage{}, fmt.Errorf("fetch profile: %w", err)
	}

	excluded, err := u.interactions.ListJobIDs(ctx, userID)
	if err != nil {
		result = "error"
		u.logger.Error("match exclusion fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return MatchPage{}, fmt.Errorf("fetch interactions: %w", err)
	}

	location := ""
	if prof.Location != nil {
		location = *prof.Location
	}
	candidates, err := u.jobs.ListCandidates(ctx, repository.CandidateFilter{
		SkillKeywords: prof.Skills,
		Location:      location,
		Limit:         u.candidatePool,
	})
	if err != nil {
		result = "error"
		u.logger.Error("match candidate fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return MatchPage{}, fmt.Errorf("fetch candidate jobs: %w", err)
	}
	span.SetAttributes(attribute.Int("match.candidates", len(candidates)))

	// Score sequentially in fetch order. The stable sort below means ties
	// keep recency order from the candidate query.
	scored := make([]matching.ScoredMatch, 0, len(candidates))
	for _, j := range candidates {
		if _, skip := excluded[j.ID]; skip {
			continue
		}
		sm := u.scorer.Score(ctx, j, prof)
		if sm.Score < minScore {
			continue
		}
		scored = append(scored, sm)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	total := len(scored)
	span.SetAttributes(attribute.Int("match.found", total))

	page := paginate(scored, offset, limit)
	if u.metrics != nil {
		for _, m := range page {
			u.metrics.Jobs.Add(ctx, 1, metric.WithAttributes(
				attribute.String("bucket", observability.ScoreBucket(m.Score))))
		}
	}

	out := MatchPage{Matches: page, Total: total}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL); err != nil {
			u.logger.Debug("match cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (u *Match) fallbackRecent(ctx context.Context, limit, offset int) (MatchPage, error) {
	recent, err := u.jobs.ListRecent(ctx, limit, offset)
	if err != nil {
		return MatchPage{}, err
	}

	matches := make([]matching.ScoredMatch, 0, len(recent))
	for _, j := range recent {
		matches = append(matches, matching.ScoredMatch{Job: j, Score: 0.0})
	}
	return MatchPage{Matches: matches, Total: len(matches), Fallback: true}, nil
}

func paginate(items []matching.ScoredMatch, offset, limit int) []matching.ScoredMatch {
	if offset >= len(items) {
		return []matching.ScoredMatch{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
