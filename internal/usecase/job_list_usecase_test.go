package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

func TestJobList_ReturnsRecent(t *testing.T) {
	recent := []job.Job{{ID: uuid.New(), Title: "Backend Engineer"}}
	jobs := &mockJobRepo{recent: recent}
	u := NewJobListUsecase(jobs)

	got, err := u.ListJobs(context.Background(), JobListParams{Limit: 10, Offset: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != recent[0].ID {
		t.Fatalf("unexpected jobs: %+v", got)
	}
	if jobs.recentLimit != 10 || jobs.recentOffset != 5 {
		t.Fatalf("pagination not forwarded: limit=%d offset=%d", jobs.recentLimit, jobs.recentOffset)
	}
}

func TestJobList_RejectsNegativePagination(t *testing.T) {
	u := NewJobListUsecase(&mockJobRepo{})

	if _, err := u.ListJobs(context.Background(), JobListParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := u.ListJobs(context.Background(), JobListParams{Offset: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobList_RepositoryFailure(t *testing.T) {
	u := NewJobListUsecase(&mockJobRepo{err: errors.New("connection reset")})

	if _, err := u.ListJobs(context.Background(), JobListParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
