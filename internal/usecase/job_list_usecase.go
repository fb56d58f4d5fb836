package usecase

import (
	"context"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
)

type JobListParams struct {
	Limit  int
	Offset int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error)
}

type JobList struct {
	jobs repository.JobRepository
}

func NewJobListUsecase(jobs repository.JobRepository) *JobList {
	return &JobList{jobs: jobs}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}
	jobs, err := u.jobs.ListRecent(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}
