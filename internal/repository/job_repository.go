package repository

import (
	"context"

	"gorm.io/gorm"

	"jobtracker/internal/model"
)

// JobRepository defines job persistence operations. Every read and
// mutation after Create is scoped to the owning user: a job belonging
// to someone else behaves exactly like a job that does not exist.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Job, error)
	FindByIDForOwner(ctx context.Context, id, ownerID uint) (*model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	DeleteForOwner(ctx context.Context, id, ownerID uint) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// ownerScoped returns a query restricted to the owner's jobs. All
// owner-sensitive queries go through here so the ownership invariant
// is enforced in one place.
func (r *jobRepository) ownerScoped(ctx context.Context, ownerID uint) *gorm.DB {
	return r.db.WithContext(ctx).Where("created_by = ?", ownerID)
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Job, error) {
	jobs := make([]model.Job, 0)
	if err := r.ownerScoped(ctx, ownerID).Order("created_at ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) FindByIDForOwner(ctx context.Context, id, ownerID uint) (*model.Job, error) {
	var job model.Job
	if err := r.ownerScoped(ctx, ownerID).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) DeleteForOwner(ctx context.Context, id, ownerID uint) error {
	result := r.ownerScoped(ctx, ownerID).Delete(&model.Job{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
