package repositories

import (
	"context"

	"github.com/careercrafter/backend/internal/entities"
	"gorm.io/gorm"
)

type Employers struct {
	db *gorm.DB
}

func NewEmployersRepository(db *gorm.DB) *Employers {
	return &Employers{db: db}
}

func (repo *Employers) GetByID(ctx context.Context, id int) (*entities.Employer, error) {
	var employer entities.Employer
	if err := repo.db.WithContext(ctx).First(&employer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

func (repo *Employers) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Employer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
