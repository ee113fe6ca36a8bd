package services

import (
	"context"
	"time"

	"github.com/careercrafter/backend/internal/entities"
	"github.com/careercrafter/backend/internal/logger"
	"github.com/careercrafter/backend/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type mailClient interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

type dispatcherUserRepository interface {
	GetByID(ctx context.Context, id int) (*entities.User, error)
}

// Dispatcher delivers email best-effort: no retries, no delivery tracking,
// and no failure ever escapes to the caller.
type Dispatcher struct {
	mail    mailClient
	users   dispatcherUserRepository
	timeout time.Duration
}

func NewDispatcher(mail mailClient, users dispatcherUserRepository) *Dispatcher {
	return &Dispatcher{
		mail:    mail,
		users:   users,
		timeout: 10 * time.Second,
	}
}

func (d *Dispatcher) Deliver(ctx context.Context, recipientEmail string, subject string, body string) {

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.mail.Send(ctx, recipientEmail, subject, body); err != nil {
		metrics.DeliveryFailuresCounter.Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeMail).
			Errorf("failed to deliver mail %q to %v: %v", subject, recipientEmail, err)
	}
}

func (d *Dispatcher) DeliverToUser(ctx context.Context, userID int, subject string, body string) {

	user, err := d.users.GetByID(ctx, userID)
	if err != nil {
		metrics.DeliveryFailuresCounter.Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeMail).
			Errorf("failed to resolve user %v for mail %q: %v", userID, subject, err)
		return
	}

	d.Deliver(ctx, user.Email, subject, body)
}
