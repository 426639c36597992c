package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raedalharbi/muqawil/internal/domain/activity"
	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/domain/project"
	"github.com/raedalharbi/muqawil/internal/repository"
)

// Service handles bid submission and decisions.
type Service struct {
	apps       Repository
	projects   ProjectRepository
	activities ActivityRepository
	logger     *slog.Logger
}

// ActivityRepository records marketplace events. May be nil.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// NewService creates a new application service.
func NewService(apps Repository, projects ProjectRepository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{apps: apps, projects: projects, activities: activities, logger: logger}
}

// SubmitRequest describes a bid submission. The bidder's trade and
// experience level are captured from the submitting actor, not from
// the request.
type SubmitRequest struct {
	ProjectID string
	BidAmount float64
	Proposal  string
}

// Submit appends a PENDING application for the given bidder. It fails
// with ErrProjectNotFound (via the repository) if the project does not
// resolve, and with a validation error on a non-positive bid or empty
// proposal. Nothing prevents the same actor bidding twice on one
// project.
func (s *Service) Submit(ctx context.Context, bidder *actor.Actor, req SubmitRequest) (*Application, error) {
	if bidder == nil {
		return nil, ErrInvalidInput
	}
	if req.BidAmount <= 0 {
		return nil, ErrInvalidBid
	}
	if strings.TrimSpace(req.Proposal) == "" {
		return nil, ErrInvalidInput
	}

	proj, err := s.projects.Get(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("resolving project: %w", err)
	}

	app := &Application{
		ID:                 uuid.NewString(),
		ProjectID:          proj.ID,
		SubcontractorID:    bidder.ID,
		SubcontractorName:  bidder.Name,
		SubcontractorTrade: bidder.Trade,
		SubcontractorExp:   bidder.Experience,
		BidAmount:          req.BidAmount,
		Proposal:           req.Proposal,
		Status:             StatusPending,
		CreatedAt:          time.Now(),
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			ActorID:       &app.SubcontractorID,
			ProjectID:     &app.ProjectID,
			ApplicationID: &app.ID,
			Type:          activity.TypeApplicationSubmitted,
			Summary:       fmt.Sprintf("%s bid on project %s", app.SubcontractorName, app.ProjectID),
		})
	}

	return app, nil
}

// Decide transitions a pending application to ACCEPTED or REJECTED.
// The transition is one-way: re-deciding an already-decided
// application fails with ErrAlreadyDecided and leaves it unchanged.
// Only the owning main contractor of the target project may decide.
func (s *Service) Decide(ctx context.Context, deciderID, id string, decision Decision) (*Application, error) {
	app, err := s.apps.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("getting application: %w", err)
	}

	if err := ValidateDecision(app.Status, decision); err != nil {
		return nil, err
	}

	proj, err := s.projects.Get(ctx, app.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("resolving project: %w", err)
	}
	if proj.PostedBy != deciderID {
		return nil, ErrNotProjectOwner
	}

	now := time.Now()
	app.Status = decision
	app.DecidedBy = &deciderID
	app.DecidedAt = &now

	if err := s.apps.UpdateDecision(ctx, app); err != nil {
		// Zero rows means the pending row is gone: a concurrent
		// decision won the race.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAlreadyDecided
		}
		return nil, fmt.Errorf("updating application: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			ActorID:       &deciderID,
			ProjectID:     &app.ProjectID,
			ApplicationID: &app.ID,
			Type:          activity.TypeApplicationDecided,
			Summary:       fmt.Sprintf("application %s %s", app.ID, strings.ToLower(string(decision))),
		})
	}

	return app, nil
}

// ListForProject returns a project's applications in submission order,
// optionally narrowed by bidder trade and experience level. The
// filters combine conjunctively; empty values apply no constraint.
func (s *Service) ListForProject(ctx context.Context, projectID string, filter ListFilter) ([]Application, error) {
	return s.apps.ListForProject(ctx, projectID, filter)
}

// ListForActor returns every application submitted by the given actor,
// in submission order.
func (s *Service) ListForActor(ctx context.Context, actorID string) ([]Application, error) {
	return s.apps.ListForActor(ctx, actorID)
}
