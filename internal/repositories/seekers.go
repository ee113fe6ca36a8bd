package repositories

import (
	"context"

	"github.com/careercrafter/backend/internal/entities"
	"gorm.io/gorm"
)

type Seekers struct {
	db *gorm.DB
}

func NewSeekersRepository(db *gorm.DB) *Seekers {
	return &Seekers{db: db}
}

func (repo *Seekers) GetByID(ctx context.Context, id int) (*entities.JobSeeker, error) {
	var seeker entities.JobSeeker
	if err := repo.db.WithContext(ctx).First(&seeker, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &seeker, nil
}

func (repo *Seekers) GetAll(ctx context.Context) ([]entities.JobSeeker, error) {
	var seekers []entities.JobSeeker
	if err := repo.db.WithContext(ctx).Find(&seekers).Error; err != nil {
		return nil, err
	}
	return seekers, nil
}
