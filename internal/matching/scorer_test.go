package matching

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
)

type fakeBackend struct {
	available bool
	vec       []float32
	err       error
}

func (f fakeBackend) Available() bool { return f.available }

func (f fakeBackend) Embed(context.Context, string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vec, nil
}

func TestScorer_ScoreInRange(t *testing.T) {
	s := NewScorer(fakeBackend{available: true, vec: []float32{1, 0, 0}}, nil)
	sm := s.Score(context.Background(), sampleJob(), sampleProfile())
	if sm.Score < 0.0 || sm.Score > 1.0 {
		t.Fatalf("score out of range: %v", sm.Score)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	s := NewScorer(fakeBackend{available: true, vec: []float32{0.3, 0.7, 0.1}}, nil)

	a := s.Score(context.Background(), sampleJob(), sampleProfile())
	b := s.Score(context.Background(), sampleJob(), sampleProfile())
	if a.Score != b.Score {
		t.Fatalf("same inputs produced different scores: %v vs %v", a.Score, b.Score)
	}
	if a.Components != b.Components {
		t.Fatalf("same inputs produced different components: %+v vs %+v", a.Components, b.Components)
	}
}

func TestScorer_BackendUnavailableDegrades(t *testing.T) {
	j := sampleJob()
	p := sampleProfile()

	unavailable := NewScorer(fakeBackend{available: false}, nil).Score(context.Background(), j, p)
	none := NewScorer(nil, nil).Score(context.Background(), j, p)

	if unavailable.Components.Semantic != 0 {
		t.Fatalf("unavailable backend must contribute 0, got %v", unavailable.Components.Semantic)
	}
	if unavailable.Score != none.Score {
		t.Fatalf("unavailable backend should equal no-backend score: %v vs %v", unavailable.Score, none.Score)
	}

	want := weightLexical*unavailable.Components.BM25 +
		(unavailable.Components.Skill + unavailable.Components.Location + unavailable.Components.Experience)
	if unavailable.Score != want {
		t.Fatalf("degraded score should be lexical plus bonuses: got %v want %v", unavailable.Score, want)
	}
}

func TestScorer_EmbedErrorDegrades(t *testing.T) {
	failing := NewScorer(fakeBackend{available: true, err: errors.New("model exploded")}, nil)

	sm := failing.Score(context.Background(), sampleJob(), sampleProfile())
	if sm.Components.Semantic != 0 {
		t.Fatalf("embed failure must contribute 0, got %v", sm.Components.Semantic)
	}
}

func TestScorer_NoDescriptionSkipsSemantic(t *testing.T) {
	s := NewScorer(fakeBackend{available: true, vec: []float32{1, 2, 3}}, nil)

	j := job.Job{Title: "Python Developer", Company: "Tech Corp"}
	sm := s.Score(context.Background(), j, sampleProfile())
	if sm.Components.Semantic != 0 {
		t.Fatalf("job without description must skip semantic scoring, got %v", sm.Components.Semantic)
	}
}

func TestScorer_NeverExceedsOne(t *testing.T) {
	// Identical vectors give semantic 1.0; stacked with full bonuses and
	// high BM25 the result must still stay within [0,1].
	s := NewScorer(fakeBackend{available: true, vec: []float32{1, 1, 1}}, nil)

	j := job.Job{
		Title:       "Python Django Developer",
		Description: "python django developer python django developer",
		Company:     "Python Django",
		Location:    "San Francisco",
	}
	p := profile.Profile{
		Skills:   []string{"python", "django", "developer"},
		Location: strptr("San Francisco"),
		Experience: []profile.ExperienceEntry{
			{Position: "developer", Company: "python shop"},
		},
	}

	sm := s.Score(context.Background(), j, p)
	if sm.Score > 1.0 {
		t.Fatalf("score must be clamped to 1.0, got %v", sm.Score)
	}
}

func TestProfileText_Flattening(t *testing.T) {
	p := profile.Profile{
		Name:     "Ada Lovelace",
		Headline: strptr("Backend Engineer"),
		Skills:   []string{"Go", "Postgres"},
		Experience: []profile.ExperienceEntry{
			{Position: "Engineer", Company: "Acme"},
		},
		Education: []profile.EducationEntry{
			{Degree: "BSc", School: "MIT"},
		},
	}

	got := ProfileText(p)
	want := "Ada Lovelace. Backend Engineer. Go, Postgres. Engineer at Acme. BSc from MIT"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
