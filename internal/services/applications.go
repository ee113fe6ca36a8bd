package services

import (
	"context"
	"time"

	"github.com/careercrafter/backend/internal/entities"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type applicationRepository interface {
	Add(ctx context.Context, application *entities.Application) error
	GetByID(ctx context.Context, id int) (*entities.Application, error)
	GetAll(ctx context.Context) ([]entities.Application, error)
	GetBySeeker(ctx context.Context, jobSeekerID int) ([]entities.Application, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, application entities.Application) error
	Remove(ctx context.Context, id int) error
}

type listingReader interface {
	GetByID(ctx context.Context, id int) (*entities.JobListing, error)
}

type seekerReader interface {
	GetByID(ctx context.Context, id int) (*entities.JobSeeker, error)
}

type employerReader interface {
	GetByID(ctx context.Context, id int) (*entities.Employer, error)
}

type pusher interface {
	Push(ctx context.Context, push Push)
}

// Applications is the lifecycle of a job application: apply, status update,
// hard delete. The primary write always commits before any notification or
// email goes out, and stays committed no matter what the side effects do.
type Applications struct {
	applications applicationRepository
	listings     listingReader
	seekers      seekerReader
	employers    employerReader
	notifier     pusher
}

func NewApplicationsService(applications applicationRepository, listings listingReader,
	seekers seekerReader, employers employerReader, notifier pusher) *Applications {

	return &Applications{
		applications: applications,
		listings:     listings,
		seekers:      seekers,
		employers:    employers,
		notifier:     notifier,
	}
}

type ApplyRequest struct {
	JobListingID   int
	JobSeekerID    int
	Status         entities.ApplicationStatus // defaults to APPLIED when empty
	ResumeFilePath string
}

func (s *Applications) Apply(ctx context.Context, req ApplyRequest) (*entities.Application, error) {

	log.Debugf("applying for listing %v by job seeker %v", req.JobListingID, req.JobSeekerID)

	if req.JobListingID == 0 || req.JobSeekerID == 0 {
		return nil, invalidRequestf("jobListingId and jobSeekerId are required")
	}

	listing, err := s.listings.GetByID(ctx, req.JobListingID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFoundf("job listing with ID %d", req.JobListingID)
		}
		return nil, errors.Wrapf(err, "failed to get job listing %d", req.JobListingID)
	}

	seeker, err := s.seekers.GetByID(ctx, req.JobSeekerID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFoundf("job seeker with ID %d", req.JobSeekerID)
		}
		return nil, errors.Wrapf(err, "failed to get job seeker %d", req.JobSeekerID)
	}

	status := req.Status
	if status == "" {
		status = entities.StatusApplied
	}

	application := &entities.Application{
		JobListingID:    listing.ID,
		JobSeekerID:     seeker.ID,
		Status:          status,
		ResumeFilePath:  req.ResumeFilePath,
		JobTitle:        listing.Title,
		ApplicantName:   seeker.FullName,
		ApplicationDate: time.Now(),
	}
	if err := s.applications.Add(ctx, application); err != nil {
		return nil, errors.Wrap(err, "failed to store application")
	}
	log.Infof("application created with ID %v", application.ID)

	s.notifyEmployer(ctx, listing, seeker, application)

	return application, nil
}

func (s *Applications) notifyEmployer(ctx context.Context, listing *entities.JobListing,
	seeker *entities.JobSeeker, application *entities.Application) {

	employer, err := s.employers.GetByID(ctx, listing.EmployerID)
	if err != nil {
		log.Warnf("cannot send notification/email, no employer resolvable for listing %v: %v", listing.ID, err)
		return
	}
	if employer.UserID == 0 {
		log.Warnf("cannot send notification/email, employer %v has no user for listing %v", employer.ID, listing.ID)
		return
	}

	s.notifier.Push(ctx, Push{
		UserID:       employer.UserID,
		Title:        "New Application Received",
		Message:      seeker.FullName + " has applied for your job: " + listing.Title,
		EmailSubject: "New Application Received",
		EmailBody: "Hello " + employer.FullName + ",\n\n" + seeker.FullName +
			" applied for your job '" + listing.Title + "'. Please review it on your dashboard.",
		JobListingID:  &listing.ID,
		ApplicationID: &application.ID,
	})
}

type UpdateApplicationRequest struct {
	ApplicationID  int
	JobListingID   int
	JobSeekerID    int
	Status         entities.ApplicationStatus
	ResumeFilePath string
}

// UpdateApplication overwrites status and resume path, re-resolving both
// references. Transitions are unconstrained: any status may replace any
// other.
func (s *Applications) UpdateApplication(ctx context.Context, req UpdateApplicationRequest) (*entities.Application, error) {

	exists, err := s.applications.Exists(ctx, req.ApplicationID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check application %d", req.ApplicationID)
	}
	if !exists {
		return nil, notFoundf("application with ID %d", req.ApplicationID)
	}

	listing, err := s.listings.GetByID(ctx, req.JobListingID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFoundf("job listing with ID %d", req.JobListingID)
		}
		return nil, errors.Wrapf(err, "failed to get job listing %d", req.JobListingID)
	}

	seeker, err := s.seekers.GetByID(ctx, req.JobSeekerID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFoundf("job seeker with ID %d", req.JobSeekerID)
		}
		return nil, errors.Wrapf(err, "failed to get job seeker %d", req.JobSeekerID)
	}

	err = s.applications.Update(ctx, entities.Application{
		ID:             req.ApplicationID,
		JobListingID:   listing.ID,
		JobSeekerID:    seeker.ID,
		Status:         req.Status,
		ResumeFilePath: req.ResumeFilePath,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update application %d", req.ApplicationID)
	}
	log.Infof("application updated with ID %v", req.ApplicationID)

	s.notifySeekerOfStatus(ctx, listing, seeker, req)

	updated, err := s.applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get updated application %d", req.ApplicationID)
	}
	return updated, nil
}

func (s *Applications) notifySeekerOfStatus(ctx context.Context, listing *entities.JobListing,
	seeker *entities.JobSeeker, req UpdateApplicationRequest) {

	if seeker.UserID == 0 {
		log.Warnf("cannot send notification/email, job seeker %v has no user for application %v",
			seeker.ID, req.ApplicationID)
		return
	}

	s.notifier.Push(ctx, Push{
		UserID:       seeker.UserID,
		Title:        "Application Status Updated",
		Message:      "Your application for '" + listing.Title + "' has been updated to " + string(req.Status),
		EmailSubject: "Application Status Updated",
		EmailBody: "Hello " + seeker.FullName + ",\n\nYour application for '" + listing.Title +
			"' status changed to " + string(req.Status) + ".",
		JobListingID:  &listing.ID,
		ApplicationID: &req.ApplicationID,
	})
}

func (s *Applications) GetApplication(ctx context.Context, id int) (*entities.Application, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFoundf("application with ID %d", id)
		}
		return nil, errors.Wrapf(err, "failed to get application %d", id)
	}
	return application, nil
}

func (s *Applications) ListApplications(ctx context.Context) ([]entities.Application, error) {
	return s.applications.GetAll(ctx)
}

func (s *Applications) ListApplicationsBySeeker(ctx context.Context, jobSeekerID int) ([]entities.Application, error) {
	return s.applications.GetBySeeker(ctx, jobSeekerID)
}

// DeleteApplication removes the row for good, unlike the listing delete
// which only deactivates.
func (s *Applications) DeleteApplication(ctx context.Context, id int) error {

	exists, err := s.applications.Exists(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "failed to check application %d", id)
	}
	if !exists {
		return notFoundf("application with ID %d", id)
	}

	if err := s.applications.Remove(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to delete application %d", id)
	}
	log.Infof("application deleted with ID %v", id)
	return nil
}
