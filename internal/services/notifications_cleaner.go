package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type notificationCleanupRepository interface {
	RemoveReadOlderThan(ctx context.Context, expirationTime time.Time) (int64, error)
}

// NotificationsCleaner drops read notifications past their expiration so the
// store stays bounded. Unread ones are kept indefinitely.
type NotificationsCleaner struct {
	notifications        notificationCleanupRepository
	cron                 *cron.Cron
	expirationTimeInDays int
}

func NewNotificationsCleaner(notifications notificationCleanupRepository, expirationInDays int) (*NotificationsCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	nc := &NotificationsCleaner{
		notifications:        notifications,
		cron:                 cron.New(),
		expirationTimeInDays: expirationInDays,
	}

	_, err := nc.cron.AddFunc("0 0 * * *", nc.cleanOldNotifications)
	if err != nil {
		return nil, err
	}

	nc.cron.Start()
	log.Infof("notifications cleaner started, expiration in days: %d", nc.expirationTimeInDays)
	return nc, nil
}

func (nc *NotificationsCleaner) Stop() {
	nc.cron.Stop()
}

func (nc *NotificationsCleaner) cleanOldNotifications() {
	expirationTime := time.Now().Add(-time.Duration(nc.expirationTimeInDays) * 24 * time.Hour)
	rowsAffected, err := nc.notifications.RemoveReadOlderThan(context.Background(), expirationTime)
	if err != nil {
		log.Errorf("Failed to clean old notifications: %v", err)
	} else {
		log.Infof("Old notifications were cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
