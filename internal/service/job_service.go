package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobtracker/internal/cache"
	"jobtracker/internal/errors"
	"jobtracker/internal/model"
	"jobtracker/internal/repository"
)

const (
	jobListCacheTTL   = 5 * time.Minute
	companyMaxLength  = 50
	positionMaxLength = 100
)

// UpdateJobInput carries the fields of a partial job update. Nil means
// the field is left unchanged; an explicit empty string is rejected.
type UpdateJobInput struct {
	Company  *string
	Position *string
	Status   *string
}

// JobService exposes owner-scoped job operations.
type JobService interface {
	CreateJob(ctx context.Context, ownerID uint, company, position, status string) (*model.Job, error)
	ListJobs(ctx context.Context, ownerID uint) ([]model.Job, error)
	GetJob(ctx context.Context, id, ownerID uint) (*model.Job, error)
	UpdateJob(ctx context.Context, id, ownerID uint, input UpdateJobInput) (*model.Job, error)
	DeleteJob(ctx context.Context, id, ownerID uint) error
}

type jobService struct {
	repo  repository.JobRepository
	cache *cache.Client
}

// NewJobService builds a JobService with repository and cache.
func NewJobService(repo repository.JobRepository, cache *cache.Client) JobService {
	return &jobService{repo: repo, cache: cache}
}

func (s *jobService) listCacheKey(ownerID uint) string {
	return fmt.Sprintf("jobs:owner:%d", ownerID)
}

func validateJobFields(company, position string) error {
	if company == "" {
		return errors.NewValidation("company is required")
	}
	if len(company) > companyMaxLength {
		return errors.NewValidation("company must be at most 50 characters")
	}
	if position == "" {
		return errors.NewValidation("position is required")
	}
	if len(position) > positionMaxLength {
		return errors.NewValidation("position must be at most 100 characters")
	}
	return nil
}

// CreateJob validates and stores a new job for the owner. Status
// defaults to pending when omitted.
func (s *jobService) CreateJob(ctx context.Context, ownerID uint, company, position, status string) (*model.Job, error) {
	if err := validateJobFields(company, position); err != nil {
		return nil, err
	}

	jobStatus := model.StatusPending
	if status != "" {
		jobStatus = model.JobStatus(status)
		if !jobStatus.Valid() {
			return nil, errors.NewValidation("status must be one of interview, declined, pending")
		}
	}

	job := &model.Job{
		Company:   company,
		Position:  position,
		Status:    jobStatus,
		CreatedBy: ownerID,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return job, nil
}

// ListJobs returns the owner's jobs ordered by creation time. An owner
// with no jobs gets an empty list, not an error.
func (s *jobService) ListJobs(ctx context.Context, ownerID uint) ([]model.Job, error) {
	if data, _ := s.cache.Get(ctx, s.listCacheKey(ownerID)); data != nil {
		var cached []model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	jobs, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(jobs); err == nil {
		_ = s.cache.Set(ctx, s.listCacheKey(ownerID), payload, jobListCacheTTL)
	}
	return jobs, nil
}

func (s *jobService) GetJob(ctx context.Context, id, ownerID uint) (*model.Job, error) {
	job, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// UpdateJob applies a partial update to an owned job. Empty company or
// position values are rejected rather than treated as clears.
func (s *jobService) UpdateJob(ctx context.Context, id, ownerID uint, input UpdateJobInput) (*model.Job, error) {
	job, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrJobNotFound
		}
		return nil, err
	}

	if input.Company != nil {
		if *input.Company == "" {
			return nil, errors.NewValidation("company must not be empty")
		}
		if len(*input.Company) > companyMaxLength {
			return nil, errors.NewValidation("company must be at most 50 characters")
		}
		job.Company = *input.Company
	}
	if input.Position != nil {
		if *input.Position == "" {
			return nil, errors.NewValidation("position must not be empty")
		}
		if len(*input.Position) > positionMaxLength {
			return nil, errors.NewValidation("position must be at most 100 characters")
		}
		job.Position = *input.Position
	}
	if input.Status != nil {
		status := model.JobStatus(*input.Status)
		if !status.Valid() {
			return nil, errors.NewValidation("status must be one of interview, declined, pending")
		}
		job.Status = status
	}

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id, ownerID uint) error {
	if err := s.repo.DeleteForOwner(ctx, id, ownerID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrJobNotFound
		}
		return fmt.Errorf("delete job: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return nil
}
