package matching

import (
	"context"
	"strings"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
	"jobboard/internal/embedding"

	"go.uber.org/zap"
)

// Blend weights. BM25 and semantic similarity are weighted; rule bonuses add
// their raw (already capped) values on top. The sum can exceed 1.0 when
// bonuses stack with high lexical and semantic scores, so the final score is
// clamped, not re-normalized.
const (
	weightLexical  = 0.5
	weightSemantic = 0.3
)

// Components breaks a final score down into its weighted parts.
type Components struct {
	BM25       float64 `json:"bm25"`
	Semantic   float64 `json:"semantic"`
	Skill      float64 `json:"skill_bonus"`
	Location   float64 `json:"location_bonus"`
	Experience float64 `json:"experience_bonus"`
}

// ScoredMatch is a job annotated with its relevance score for one profile.
// It is transient: computed per request and never persisted.
type ScoredMatch struct {
	Job             job.Job
	Score           float64
	Components      Components
	SkillMatched    bool
	LocationMatched bool
}

// Scorer blends lexical, semantic and rule-based signals into one score.
// It holds no per-call state; a single Scorer serves concurrent requests.
type Scorer struct {
	backend embedding.Backend
	logger  *zap.Logger
}

// NewScorer builds a Scorer. A nil backend disables semantic scoring.
func NewScorer(backend embedding.Backend, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{backend: backend, logger: logger}
}

// Score computes the blended relevance of a job for a profile, clamped to
// [0,1]. Identical inputs always produce identical output. Embedding
// failures degrade the semantic component to 0 and are never propagated.
func (s *Scorer) Score(ctx context.Context, j job.Job, p profile.Profile) ScoredMatch {
	lexical := BM25(j, p)
	bonus := RuleBonus(j, p)
	semantic := s.semanticScore(ctx, j, p)

	score := weightLexical*lexical + weightSemantic*semantic + bonus.Total()
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}

	return ScoredMatch{
		Job:   j,
		Score: score,
		Components: Components{
			BM25:       lexical,
			Semantic:   semantic,
			Skill:      bonus.Skill,
			Location:   bonus.Location,
			Experience: bonus.Experience,
		},
		SkillMatched:    bonus.SkillMatched,
		LocationMatched: bonus.LocationMatched,
	}
}

// semanticScore returns the cosine-based similarity in [0,1], or 0 when the
// backend is unavailable, the job has no description, or embedding fails.
// Availability is re-checked on every call since the backend loads lazily.
func (s *Scorer) semanticScore(ctx context.Context, j job.Job, p profile.Profile) float64 {
	if s.backend == nil || !s.backend.Available() {
		return 0
	}
	if strings.TrimSpace(j.Description) == "" {
		return 0
	}

	profileVec, err := s.backend.Embed(ctx, ProfileText(p))
	if err != nil {
		s.logger.Warn("profile embedding failed", zap.String("profile_id", p.ID.String()), zap.Error(err))
		return 0
	}
	jobVec, err := s.backend.Embed(ctx, j.Description)
	if err != nil {
		s.logger.Warn("job embedding failed", zap.String("job_id", j.ID.String()), zap.Error(err))
		return 0
	}

	return embedding.Similarity(profileVec, jobVec)
}

// ProfileText flattens a profile into prose for embedding.
func ProfileText(p profile.Profile) string {
	var parts []string
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	if p.Headline != nil && *p.Headline != "" {
		parts = append(parts, *p.Headline)
	}
	if len(p.Skills) > 0 {
		parts = append(parts, strings.Join(p.Skills, ", "))
	}
	for _, e := range p.Experience {
		if e.Position == "" && e.Company == "" {
			continue
		}
		parts = append(parts, e.Position+" at "+e.Company)
	}
	for _, e := range p.Education {
		if e.Degree == "" && e.School == "" {
			continue
		}
		parts = append(parts, e.Degree+" from "+e.School)
	}
	return strings.Join(parts, ". ")
}
