package services

import (
	"context"

	"github.com/careercrafter/backend/internal/entities"
	"github.com/careercrafter/backend/internal/logger"
	log "github.com/sirupsen/logrus"
)

type notificationCreator interface {
	Create(ctx context.Context, input NotificationInput) (*entities.Notification, error)
}

type deliverer interface {
	DeliverToUser(ctx context.Context, userID int, subject string, body string)
}

// Push is one notify+email side-effect pair addressed to a single user.
type Push struct {
	UserID        int
	Title         string
	Message       string
	EmailSubject  string
	EmailBody     string
	JobListingID  *int
	ApplicationID *int
}

// Notifier is the single best-effort seam between the primary writes and
// their side effects. Every notification+email pair in the system goes
// through Push, which logs and swallows all failures.
type Notifier struct {
	store      notificationCreator
	dispatcher deliverer
}

func NewNotifier(store notificationCreator, dispatcher deliverer) *Notifier {
	return &Notifier{store: store, dispatcher: dispatcher}
}

func (n *Notifier) Push(ctx context.Context, push Push) {

	if _, err := n.store.Create(ctx, NotificationInput{
		UserID:        push.UserID,
		Title:         push.Title,
		Message:       push.Message,
		JobListingID:  push.JobListingID,
		ApplicationID: push.ApplicationID,
	}); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to store notification %q for user %v: %v", push.Title, push.UserID, err)
		return
	}

	n.dispatcher.DeliverToUser(ctx, push.UserID, push.EmailSubject, push.EmailBody)
}
