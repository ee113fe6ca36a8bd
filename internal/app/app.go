package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/careercrafter/backend/internal/clients/smtp"
	"github.com/careercrafter/backend/internal/config"
	"github.com/careercrafter/backend/internal/repositories"
	"github.com/careercrafter/backend/internal/services"
)

// App wires the application-and-notification pipeline. The exported services
// are the call boundary for the CRUD transport layer, which lives outside
// this module.
type App struct {
	Applications  *services.Applications
	Listings      *services.Listings
	Matcher       *services.Matcher
	Notifications *services.NotificationStore
	Otp           *services.OtpStore

	dbContext *repositories.DbContext
	cleaner   *services.NotificationsCleaner
}

func New(cfg *config.Config) (*App, error) {

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		return nil, err
	}

	if err = dbContext.Migrate(); err != nil {
		dbContext.Close()
		return nil, err
	}

	users := repositories.NewUsersRepository(dbContext.DB)
	employers := repositories.NewEmployersRepository(dbContext.DB)
	seekers := repositories.NewSeekersRepository(dbContext.DB)
	listings := repositories.NewListingsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	notifications := repositories.NewNotificationsRepository(dbContext.DB)

	mailClient := smtp.NewClient(cfg.Mail)

	store := services.NewNotificationStore(notifications)
	dispatcher := services.NewDispatcher(mailClient, users)
	notifier := services.NewNotifier(store, dispatcher)
	matcher := services.NewMatcher(listings, seekers)

	bus := EventBus.New()

	if _, err = services.NewFanout(bus, matcher, notifier); err != nil {
		dbContext.Close()
		return nil, err
	}

	cleaner, err := services.NewNotificationsCleaner(notifications, cfg.Notifications.ExpirationInDays)
	if err != nil {
		dbContext.Close()
		return nil, err
	}

	return &App{
		Applications:  services.NewApplicationsService(applications, listings, seekers, employers, notifier),
		Listings:      services.NewListingsService(listings, employers, bus),
		Matcher:       matcher,
		Notifications: store,
		Otp:           services.NewOtpStore(),
		dbContext:     dbContext,
		cleaner:       cleaner,
	}, nil
}

func (a *App) Close() error {
	a.cleaner.Stop()
	return a.dbContext.Close()
}
