package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CandidateListings_WhenEmptySkills_ShouldReturnEmpty(t *testing.T) {

	env := newTestEnv(t)
	matcher := NewMatcher(env.listings, env.seekers)

	employer := env.createEmployer(t, 0, "E")
	env.createListing(t, employer.ID, "Backend Dev", "Java, SQL", "Bangalore", true)

	matched, err := matcher.CandidateListings(context.Background(), nil, "bangalore")
	assert.NoError(t, err)
	assert.Empty(t, matched)

	matched, err = matcher.CandidateListings(context.Background(), []string{" ", ""}, "bangalore")
	assert.NoError(t, err)
	assert.Empty(t, matched)
}

func Test_CandidateListings_ShouldMatchSkillOrLocationCaseInsensitive(t *testing.T) {

	env := newTestEnv(t)
	matcher := NewMatcher(env.listings, env.seekers)

	employer := env.createEmployer(t, 0, "E")
	bySkill := env.createListing(t, employer.ID, "Backend Dev", "Java, SQL", "Chennai", true)
	byLocation := env.createListing(t, employer.ID, "Designer", "Figma", "Greater Bangalore Area", true)
	env.createListing(t, employer.ID, "Go Dev", "Go", "Pune", true)
	env.createListing(t, employer.ID, "Inactive Java Dev", "Java", "Bangalore", false)

	matched, err := matcher.CandidateListings(context.Background(), []string{"JAVA", "sql"}, "Bangalore")
	assert.NoError(t, err)

	require.Len(t, matched, 2)
	ids := []int{matched[0].ID, matched[1].ID}
	assert.Contains(t, ids, bySkill.ID)
	assert.Contains(t, ids, byLocation.ID)
}

// Observed behavior carried over from the original recommendation query: an
// empty location turns the location clause into match-everything, so every
// active listing comes back once any skill token is present.
func Test_CandidateListings_WhenLocationEmpty_ShouldMatchEveryActiveListing(t *testing.T) {

	env := newTestEnv(t)
	matcher := NewMatcher(env.listings, env.seekers)

	employer := env.createEmployer(t, 0, "E")
	env.createListing(t, employer.ID, "Backend Dev", "Java, SQL", "Chennai", true)
	env.createListing(t, employer.ID, "Go Dev", "Go", "Pune", true)

	matched, err := matcher.CandidateListings(context.Background(), []string{"cobol"}, "")
	assert.NoError(t, err)
	assert.Len(t, matched, 2)
}

func Test_RecommendationsForSeeker_WhenNoSkills_ShouldReturnEmpty(t *testing.T) {

	env := newTestEnv(t)
	matcher := NewMatcher(env.listings, env.seekers)

	employer := env.createEmployer(t, 0, "E")
	env.createListing(t, employer.ID, "Backend Dev", "Java, SQL", "Bangalore", true)
	seeker := env.createSeeker(t, 0, "S", "  ", "Bangalore")

	matched, err := matcher.RecommendationsForSeeker(context.Background(), seeker.ID)
	assert.NoError(t, err)
	assert.Empty(t, matched)
}

func Test_RecommendationsForSeeker_WhenSeekerMissing_ShouldReturnNotFound(t *testing.T) {

	env := newTestEnv(t)
	matcher := NewMatcher(env.listings, env.seekers)

	_, err := matcher.RecommendationsForSeeker(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_RecommendationsForSeeker_ShouldMatchOnSkillsAndAddress(t *testing.T) {

	env := newTestEnv(t)
	matcher := NewMatcher(env.listings, env.seekers)

	employer := env.createEmployer(t, 0, "E")
	javaJob := env.createListing(t, employer.ID, "Backend Dev", "Java, SQL", "Chennai", true)
	localJob := env.createListing(t, employer.ID, "Support", "Communication", "Bangalore", true)
	env.createListing(t, employer.ID, "Rust Dev", "Rust", "Berlin", true)

	seeker := env.createSeeker(t, 0, "S", "java, python", "Bangalore")

	matched, err := matcher.RecommendationsForSeeker(context.Background(), seeker.ID)
	assert.NoError(t, err)

	require.Len(t, matched, 2)
	ids := []int{matched[0].ID, matched[1].ID}
	assert.Contains(t, ids, javaJob.ID)
	assert.Contains(t, ids, localJob.ID)
}
