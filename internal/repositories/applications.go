package repositories

import (
	"context"

	"github.com/careercrafter/backend/internal/entities"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, application *entities.Application) error {
	return repo.db.WithContext(ctx).Create(application).Error
}

func (repo *Applications) GetByID(ctx context.Context, id int) (*entities.Application, error) {
	var application entities.Application
	if err := repo.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetAll(ctx context.Context) ([]entities.Application, error) {
	var applications []entities.Application
	if err := repo.db.WithContext(ctx).Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) GetBySeeker(ctx context.Context, jobSeekerID int) ([]entities.Application, error) {
	var applications []entities.Application
	if err := repo.db.WithContext(ctx).Find(&applications, "job_seeker_id = ?", jobSeekerID).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Application{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update never touches application_date: it is assigned once at creation.
func (repo *Applications) Update(ctx context.Context, application entities.Application) error {
	return repo.db.WithContext(ctx).Model(&entities.Application{}).Where("id = ?", application.ID).
		Updates(map[string]any{
			"job_listing_id":   application.JobListingID,
			"job_seeker_id":    application.JobSeekerID,
			"status":           application.Status,
			"resume_file_path": application.ResumeFilePath,
		}).Error
}

func (repo *Applications) Remove(ctx context.Context, id int) error {
	return repo.db.WithContext(ctx).Delete(&entities.Application{ID: id}).Error
}
