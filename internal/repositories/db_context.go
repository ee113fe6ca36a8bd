package repositories

import (
	"fmt"

	"github.com/careercrafter/backend/internal/entities"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	models := []any{
		entities.User{},
		entities.Employer{},
		entities.JobSeeker{},
		entities.JobListing{},
		entities.Application{},
		entities.Notification{},
	}

	for _, model := range models {
		if err := c.DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T entity: %w", model, err)
		}
	}

	// Non-unique: the duplicate check on create is a read, not a constraint,
	// so concurrent identical creates may still both insert.
	if err := c.DB.Exec("CREATE INDEX IF NOT EXISTS idx_notification_dedup ON notifications (user_id, title, message); " +
		"CREATE INDEX IF NOT EXISTS idx_notification_user ON notifications (user_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
