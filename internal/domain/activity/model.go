package activity

import "time"

// Type represents the kind of marketplace event.
type Type string

const (
	TypeProjectPosted        Type = "project_posted"
	TypeApplicationSubmitted Type = "application_submitted"
	TypeApplicationDecided   Type = "application_decided"
	TypeProfileUpdated       Type = "profile_updated"
)

// Entry is an event in the append-only activity log. It records who
// did what and when, including bid decisions, which the registries
// themselves do not retain.
type Entry struct {
	ID            int64     `json:"id"`
	ActorID       *string   `json:"actorId,omitempty"`
	ProjectID     *string   `json:"projectId,omitempty"`
	ApplicationID *string   `json:"applicationId,omitempty"`
	Type          Type      `json:"type"`
	Summary       string    `json:"summary"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListOptions filters an activity listing.
type ListOptions struct {
	ProjectID string
	Limit     int
}
