package services

import (
	"context"
	"sync"
	"testing"

	"github.com/careercrafter/backend/internal/entities"
	"github.com/careercrafter/backend/internal/repositories"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db            *repositories.DbContext
	users         *repositories.Users
	employers     *repositories.Employers
	seekers       *repositories.Seekers
	listings      *repositories.Listings
	applications  *repositories.Applications
	notifications *repositories.Notifications
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbContext, err := repositories.NewDbContext(":memory:")
	require.NoError(t, err)
	require.NoError(t, dbContext.Migrate())
	t.Cleanup(func() { _ = dbContext.Close() })

	return &testEnv{
		db:            dbContext,
		users:         repositories.NewUsersRepository(dbContext.DB),
		employers:     repositories.NewEmployersRepository(dbContext.DB),
		seekers:       repositories.NewSeekersRepository(dbContext.DB),
		listings:      repositories.NewListingsRepository(dbContext.DB),
		applications:  repositories.NewApplicationsRepository(dbContext.DB),
		notifications: repositories.NewNotificationsRepository(dbContext.DB),
	}
}

func (env *testEnv) createUser(t *testing.T, email string, role entities.UserRole) entities.User {
	t.Helper()
	user := entities.User{Email: email, Role: role}
	require.NoError(t, env.db.DB.Create(&user).Error)
	return user
}

func (env *testEnv) createEmployer(t *testing.T, userID int, fullName string) entities.Employer {
	t.Helper()
	employer := entities.Employer{UserID: userID, FullName: fullName}
	require.NoError(t, env.db.DB.Create(&employer).Error)
	return employer
}

func (env *testEnv) createSeeker(t *testing.T, userID int, fullName, skills, address string) entities.JobSeeker {
	t.Helper()
	seeker := entities.JobSeeker{UserID: userID, FullName: fullName, Skills: skills, Address: address}
	require.NoError(t, env.db.DB.Create(&seeker).Error)
	return seeker
}

func (env *testEnv) createListing(t *testing.T, employerID int, title, requiredSkills, location string, active bool) entities.JobListing {
	t.Helper()
	listing := entities.JobListing{
		EmployerID:     employerID,
		Title:          title,
		Description:    "test description",
		RequiredSkills: requiredSkills,
		Location:       location,
		Active:         active,
	}
	require.NoError(t, env.db.DB.Create(&listing).Error)
	// GORM drops a zero-value Active on insert because of the default:true
	// tag, so inactive listings need an explicit update to stick.
	if !active {
		require.NoError(t, env.db.DB.Model(&listing).Update("active", false).Error)
	}
	return listing
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type recordingMail struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMail) Send(_ context.Context, to string, subject string, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *recordingMail) sentMails() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

type failingMail struct{}

func (failingMail) Send(context.Context, string, string, string) error {
	return errors.New("smtp transport down")
}
