package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/careercrafter/backend/internal/entities"
	"gorm.io/gorm"
)

type Notifications struct {
	db *gorm.DB
}

func NewNotificationsRepository(db *gorm.DB) *Notifications {
	return &Notifications{db: db}
}

func (repo *Notifications) Add(ctx context.Context, notification *entities.Notification) error {
	return repo.db.WithContext(ctx).Create(notification).Error
}

func (repo *Notifications) GetByID(ctx context.Context, id int) (*entities.Notification, error) {
	var notification entities.Notification
	if err := repo.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (repo *Notifications) GetByUser(ctx context.Context, userID int) ([]entities.Notification, error) {
	var notifications []entities.Notification
	if err := repo.db.WithContext(ctx).Find(&notifications, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// ExistsEquivalent reports whether an identical (user, title, message)
// notification is already stored. Exact string match, nothing semantic.
func (repo *Notifications) ExistsEquivalent(ctx context.Context, userID int, title, message string) (bool, error) {
	var notification entities.Notification
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND title = ? AND message = ?", userID, title, message).
		First(&notification).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (repo *Notifications) CountUnreadByUser(ctx context.Context, userID int) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Notifications) SetRead(ctx context.Context, id int, isRead bool) error {
	return repo.db.WithContext(ctx).Model(&entities.Notification{}).Where("id = ?", id).
		Update("is_read", isRead).Error
}

func (repo *Notifications) Remove(ctx context.Context, id int) error {
	return repo.db.WithContext(ctx).Delete(&entities.Notification{ID: id}).Error
}

func (repo *Notifications) RemoveReadOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.Notification{}, "is_read = ? AND created_at < ?", true, expirationTime)
	return res.RowsAffected, res.Error
}
