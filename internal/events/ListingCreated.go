package events

import "github.com/careercrafter/backend/internal/entities"

var ListingCreatedTopic = "ListingCreatedEvent"

type ListingCreated struct {
	Listing entities.JobListing
}
