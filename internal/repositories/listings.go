package repositories

import (
	"context"

	"github.com/careercrafter/backend/internal/entities"
	"gorm.io/gorm"
)

type Listings struct {
	db *gorm.DB
}

func NewListingsRepository(db *gorm.DB) *Listings {
	return &Listings{db: db}
}

func (repo *Listings) Add(ctx context.Context, listing *entities.JobListing) error {
	return repo.db.WithContext(ctx).Create(listing).Error
}

func (repo *Listings) GetByID(ctx context.Context, id int) (*entities.JobListing, error) {
	var listing entities.JobListing
	if err := repo.db.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (repo *Listings) GetAll(ctx context.Context) ([]entities.JobListing, error) {
	var listings []entities.JobListing
	if err := repo.db.WithContext(ctx).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (repo *Listings) GetActive(ctx context.Context) ([]entities.JobListing, error) {
	var listings []entities.JobListing
	if err := repo.db.WithContext(ctx).Find(&listings, "active = ?", true).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (repo *Listings) GetByEmployer(ctx context.Context, employerID int) ([]entities.JobListing, error) {
	var listings []entities.JobListing
	if err := repo.db.WithContext(ctx).Find(&listings, "employer_id = ?", employerID).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (repo *Listings) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.JobListing{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (repo *Listings) Update(ctx context.Context, listing entities.JobListing) error {
	return repo.db.WithContext(ctx).Model(&entities.JobListing{}).Where("id = ?", listing.ID).
		Updates(map[string]any{
			"employer_id":     listing.EmployerID,
			"company_name":    listing.CompanyName,
			"title":           listing.Title,
			"description":     listing.Description,
			"qualification":   listing.Qualification,
			"experience":      listing.Experience,
			"location":        listing.Location,
			"salary":          listing.Salary,
			"job_type":        listing.JobType,
			"required_skills": listing.RequiredSkills,
			"posted_date":     listing.PostedDate,
			"active":          listing.Active,
		}).Error
}

// Deactivate is the listing "delete": the row stays, active flips to false.
func (repo *Listings) Deactivate(ctx context.Context, id int) error {
	return repo.db.WithContext(ctx).Model(&entities.JobListing{}).Where("id = ?", id).
		Update("active", false).Error
}
