package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/careercrafter/backend/internal/entities"
	"github.com/careercrafter/backend/internal/events"
	"github.com/careercrafter/backend/internal/logger"
	"github.com/careercrafter/backend/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type candidateSeekerSource interface {
	CandidateSeekers(ctx context.Context, listing entities.JobListing) ([]entities.JobSeeker, error)
}

// Fanout notifies job seekers about freshly created listings. It hangs off
// the bus so listing creation never waits on, or fails because of, the
// notification plumbing.
type Fanout struct {
	matcher  candidateSeekerSource
	notifier pusher
}

func NewFanout(bus EventBus.Bus, matcher candidateSeekerSource, notifier pusher) (*Fanout, error) {

	f := &Fanout{matcher: matcher, notifier: notifier}

	if err := bus.Subscribe(events.ListingCreatedTopic, f.onListingCreated); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Fanout) onListingCreated(event events.ListingCreated) {
	f.NotifySeekers(context.Background(), event.Listing)
}

// NotifySeekers pushes a notification+email to every candidate seeker. Each
// push swallows its own failures, so one bad recipient cannot block the
// rest.
func (f *Fanout) NotifySeekers(ctx context.Context, listing entities.JobListing) {

	start := time.Now()

	seekers, err := f.matcher.CandidateSeekers(ctx, listing)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to get candidate seekers for listing %v: %v", listing.ID, err)
		return
	}

	notified := 0
	for _, seeker := range seekers {
		if seeker.UserID == 0 {
			log.Warnf("cannot notify job seeker %v about listing %v: no user", seeker.ID, listing.ID)
			continue
		}

		f.notifier.Push(ctx, Push{
			UserID:       seeker.UserID,
			Title:        "New job posted: " + listing.Title,
			Message:      "A new job '" + listing.Title + "' matching your profile is posted.",
			EmailSubject: "New Job Opportunity: " + listing.Title,
			EmailBody: "Hello " + seeker.FullName +
				",\n\nA new job that matches your profile has been posted. Please check your dashboard.",
			JobListingID: &listing.ID,
		})
		notified++
	}

	metrics.FannedOutListingsCounter.Inc()
	metrics.FanoutDuration.Observe(time.Since(start).Seconds())
	log.Infof("notified %v job seekers about listing %v", notified, listing.ID)
}
