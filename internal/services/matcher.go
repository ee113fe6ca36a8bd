package services

import (
	"context"
	"strings"

	"github.com/careercrafter/backend/internal/entities"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type matcherListingRepository interface {
	GetActive(ctx context.Context) ([]entities.JobListing, error)
}

type matcherSeekerRepository interface {
	GetByID(ctx context.Context, id int) (*entities.JobSeeker, error)
	GetAll(ctx context.Context) ([]entities.JobSeeker, error)
}

// Matcher turns free-text seeker skills and a location into a boolean match
// over active listings. No scoring, no ranking; result order is whatever the
// database returns.
type Matcher struct {
	listings matcherListingRepository
	seekers  matcherSeekerRepository
}

func NewMatcher(listings matcherListingRepository, seekers matcherSeekerRepository) *Matcher {
	return &Matcher{listings: listings, seekers: seekers}
}

// CandidateListings returns the active listings whose requiredSkills contain
// any of the given skill tokens, or whose location contains the given
// location, both case-insensitive. An empty skill list short-circuits to an
// empty result regardless of location.
func (m *Matcher) CandidateListings(ctx context.Context, skills []string, location string) ([]entities.JobListing, error) {

	tokens := lo.FilterMap(skills, func(skill string, _ int) (string, bool) {
		token := strings.ToLower(strings.TrimSpace(skill))
		return token, token != ""
	})
	if len(tokens) == 0 {
		return []entities.JobListing{}, nil
	}

	active, err := m.listings.GetActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active listings")
	}

	location = strings.ToLower(strings.TrimSpace(location))

	return lo.Filter(active, func(listing entities.JobListing, _ int) bool {
		return listingMatches(listing, tokens, location)
	}), nil
}

// CandidateSeekers returns the seekers to notify about a new listing. Today
// that is every seeker, unfiltered; a skill/location filter would slot in
// here if fan-out is ever unified with the recommendation query.
func (m *Matcher) CandidateSeekers(ctx context.Context, _ entities.JobListing) ([]entities.JobSeeker, error) {
	return m.seekers.GetAll(ctx)
}

// RecommendationsForSeeker resolves the seeker and matches their skills and
// address against active listings. A seeker with no skills gets an empty
// result, not an error.
func (m *Matcher) RecommendationsForSeeker(ctx context.Context, jobSeekerID int) ([]entities.JobListing, error) {

	seeker, err := m.seekers.GetByID(ctx, jobSeekerID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFoundf("job seeker with ID %d", jobSeekerID)
		}
		return nil, errors.Wrapf(err, "failed to get job seeker %d", jobSeekerID)
	}

	if strings.TrimSpace(seeker.Skills) == "" {
		return []entities.JobListing{}, nil
	}

	return m.CandidateListings(ctx, strings.Split(seeker.Skills, ","), seeker.Address)
}

func listingMatches(listing entities.JobListing, skillTokens []string, location string) bool {

	requiredSkills := strings.ToLower(listing.RequiredSkills)
	for _, token := range skillTokens {
		if strings.Contains(requiredSkills, token) {
			return true
		}
	}

	// An empty location matches every listing, same as the LIKE '%%' the
	// original recommendation query produced.
	return strings.Contains(strings.ToLower(listing.Location), location)
}
