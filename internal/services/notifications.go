package services

import (
	"context"
	"sort"

	"github.com/careercrafter/backend/internal/entities"
	"github.com/careercrafter/backend/internal/metrics"
	"github.com/pkg/errors"
)

type notificationRepository interface {
	Add(ctx context.Context, notification *entities.Notification) error
	GetByID(ctx context.Context, id int) (*entities.Notification, error)
	GetByUser(ctx context.Context, userID int) ([]entities.Notification, error)
	ExistsEquivalent(ctx context.Context, userID int, title, message string) (bool, error)
	CountUnreadByUser(ctx context.Context, userID int) (int64, error)
	SetRead(ctx context.Context, id int, isRead bool) error
	Remove(ctx context.Context, id int) error
}

type NotificationInput struct {
	UserID        int
	Title         string
	Message       string
	JobListingID  *int
	ApplicationID *int
}

// NotificationStore owns durable per-user notification records. Creation is
// deduplicated on exact (userID, title, message) match; the check and the
// insert are separate statements, so concurrent identical creates may still
// both land.
type NotificationStore struct {
	notifications notificationRepository
}

func NewNotificationStore(notifications notificationRepository) *NotificationStore {
	return &NotificationStore{notifications: notifications}
}

// Create stores a new notification, or returns (nil, nil) when an equivalent
// one already exists.
func (s *NotificationStore) Create(ctx context.Context, input NotificationInput) (*entities.Notification, error) {

	exists, err := s.notifications.ExistsEquivalent(ctx, input.UserID, input.Title, input.Message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for equivalent notification")
	}
	if exists {
		metrics.DuplicateNotificationsCounter.Inc()
		return nil, nil
	}

	notification := &entities.Notification{
		UserID:        input.UserID,
		Title:         input.Title,
		Message:       input.Message,
		JobListingID:  input.JobListingID,
		ApplicationID: input.ApplicationID,
	}
	if err := s.notifications.Add(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to store notification")
	}

	metrics.NotificationsCreatedCounter.Inc()
	return notification, nil
}

func (s *NotificationStore) MarkRead(ctx context.Context, id int) (*entities.Notification, error) {
	return s.setRead(ctx, id, true)
}

func (s *NotificationStore) MarkUnread(ctx context.Context, id int) (*entities.Notification, error) {
	return s.setRead(ctx, id, false)
}

func (s *NotificationStore) setRead(ctx context.Context, id int, isRead bool) (*entities.Notification, error) {

	notification, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFoundf("notification with ID %d", id)
		}
		return nil, errors.Wrapf(err, "failed to get notification %d", id)
	}

	if err := s.notifications.SetRead(ctx, id, isRead); err != nil {
		return nil, errors.Wrapf(err, "failed to update notification %d", id)
	}

	notification.IsRead = isRead
	return notification, nil
}

// ListByUser returns the user's notifications, most recent first. The sort
// happens here at read time, not via an index.
func (s *NotificationStore) ListByUser(ctx context.Context, userID int) ([]entities.Notification, error) {

	notifications, err := s.notifications.GetByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list notifications for user %d", userID)
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (s *NotificationStore) CountUnread(ctx context.Context, userID int) (int64, error) {
	return s.notifications.CountUnreadByUser(ctx, userID)
}

func (s *NotificationStore) Delete(ctx context.Context, id int) error {

	if _, err := s.notifications.GetByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return notFoundf("notification with ID %d", id)
		}
		return errors.Wrapf(err, "failed to get notification %d", id)
	}

	return s.notifications.Remove(ctx, id)
}
