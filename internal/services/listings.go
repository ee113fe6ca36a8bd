package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/careercrafter/backend/internal/entities"
	"github.com/careercrafter/backend/internal/events"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type listingRepository interface {
	Add(ctx context.Context, listing *entities.JobListing) error
	GetByID(ctx context.Context, id int) (*entities.JobListing, error)
	GetAll(ctx context.Context) ([]entities.JobListing, error)
	GetActive(ctx context.Context) ([]entities.JobListing, error)
	GetByEmployer(ctx context.Context, employerID int) ([]entities.JobListing, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, listing entities.JobListing) error
	Deactivate(ctx context.Context, id int) error
}

type employerChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type Listings struct {
	listings  listingRepository
	employers employerChecker
	bus       EventBus.Bus
	validate  *validator.Validate
}

func NewListingsService(listings listingRepository, employers employerChecker, bus EventBus.Bus) *Listings {
	return &Listings{
		listings:  listings,
		employers: employers,
		bus:       bus,
		validate:  validator.New(),
	}
}

type CreateListingRequest struct {
	EmployerID     int    `validate:"required"`
	CompanyName    string
	Title          string `validate:"required"`
	Description    string `validate:"required"`
	Qualification  string
	Experience     int
	Location       string
	Salary         int
	JobType        entities.JobType
	RequiredSkills string
	PostedDate     time.Time // defaults to today when zero
}

// CreateListing persists the listing, then publishes ListingCreated so the
// fan-out can notify seekers. The publish happens strictly after the write;
// fan-out failures never reach this caller.
func (s *Listings) CreateListing(ctx context.Context, req CreateListingRequest) (*entities.JobListing, error) {

	log.Debugf("creating job listing for employer %v, title %q", req.EmployerID, req.Title)

	if err := s.validate.Struct(req); err != nil {
		return nil, invalidRequestf("employer, title, and description must be provided: %v", err)
	}
	if !req.PostedDate.IsZero() && dateOnly(req.PostedDate).After(dateOnly(time.Now())) {
		return nil, invalidRequestf("posted date cannot be in the future")
	}

	exists, err := s.employers.Exists(ctx, req.EmployerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check employer %d", req.EmployerID)
	}
	if !exists {
		return nil, notFoundf("employer with ID %d", req.EmployerID)
	}

	postedDate := req.PostedDate
	if postedDate.IsZero() {
		postedDate = dateOnly(time.Now())
	}

	listing := &entities.JobListing{
		EmployerID:     req.EmployerID,
		CompanyName:    req.CompanyName,
		Title:          req.Title,
		Description:    req.Description,
		Qualification:  req.Qualification,
		Experience:     req.Experience,
		Location:       req.Location,
		Salary:         req.Salary,
		JobType:        req.JobType,
		RequiredSkills: req.RequiredSkills,
		PostedDate:     postedDate,
		Active:         true,
	}
	if err := s.listings.Add(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to store job listing")
	}
	log.Infof("job listing created with ID %v", listing.ID)

	s.bus.Publish(events.ListingCreatedTopic, events.ListingCreated{Listing: *listing})

	return listing, nil
}

type UpdateListingRequest struct {
	ID             int
	EmployerID     int
	CompanyName    string
	Title          string
	Description    string
	Qualification  string
	Experience     int
	Location       string
	Salary         int
	JobType        entities.JobType
	RequiredSkills string
	PostedDate     time.Time
	Active         bool
}

func (s *Listings) UpdateListing(ctx context.Context, req UpdateListingRequest) (*entities.JobListing, error) {

	exists, err := s.listings.Exists(ctx, req.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check job listing %d", req.ID)
	}
	if !exists {
		return nil, notFoundf("job listing with ID %d", req.ID)
	}

	if !req.PostedDate.IsZero() && dateOnly(req.PostedDate).After(dateOnly(time.Now())) {
		return nil, invalidRequestf("posted date cannot be in the future")
	}

	employerExists, err := s.employers.Exists(ctx, req.EmployerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check employer %d", req.EmployerID)
	}
	if !employerExists {
		return nil, notFoundf("employer with ID %d", req.EmployerID)
	}

	postedDate := req.PostedDate
	if postedDate.IsZero() {
		postedDate = dateOnly(time.Now())
	}

	err = s.listings.Update(ctx, entities.JobListing{
		ID:             req.ID,
		EmployerID:     req.EmployerID,
		CompanyName:    req.CompanyName,
		Title:          req.Title,
		Description:    req.Description,
		Qualification:  req.Qualification,
		Experience:     req.Experience,
		Location:       req.Location,
		Salary:         req.Salary,
		JobType:        req.JobType,
		RequiredSkills: req.RequiredSkills,
		PostedDate:     postedDate,
		Active:         req.Active,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update job listing %d", req.ID)
	}

	return s.listings.GetByID(ctx, req.ID)
}

func (s *Listings) GetListing(ctx context.Context, id int) (*entities.JobListing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFoundf("job listing with ID %d", id)
		}
		return nil, errors.Wrapf(err, "failed to get job listing %d", id)
	}
	return listing, nil
}

func (s *Listings) ListListings(ctx context.Context) ([]entities.JobListing, error) {
	return s.listings.GetAll(ctx)
}

func (s *Listings) ListActiveListings(ctx context.Context) ([]entities.JobListing, error) {
	return s.listings.GetActive(ctx)
}

func (s *Listings) ListListingsByEmployer(ctx context.Context, employerID int) ([]entities.JobListing, error) {
	return s.listings.GetByEmployer(ctx, employerID)
}

// DeactivateListing is the listing "delete": it flips active to false and
// keeps the row, unlike the application delete which removes the row.
func (s *Listings) DeactivateListing(ctx context.Context, id int) error {

	exists, err := s.listings.Exists(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "failed to check job listing %d", id)
	}
	if !exists {
		return notFoundf("job listing with ID %d", id)
	}

	if err := s.listings.Deactivate(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to deactivate job listing %d", id)
	}
	log.Infof("job listing marked inactive with ID %v", id)
	return nil
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
