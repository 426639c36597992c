package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raedalharbi/muqawil/internal/domain/activity"
	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/repository"
)

// Service handles project posting and browsing.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// ActivityRepository records marketplace events. May be nil.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// NewService creates a new project service.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, logger: logger}
}

// CreateRequest is a posting-form draft. Budget arrives as the raw
// form string so that a parse failure surfaces as a validation error
// rather than a coerced NaN.
type CreateRequest struct {
	Title       string
	Description string
	Budget      string
	Location    string
	Deadline    string
	Category    actor.TradeCategory
	PostedBy    string
}

// Create validates the draft and prepends a new OPEN project to the
// registry. BudgetFormatted is derived here, once.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, ErrInvalidInput
	}
	if !actor.ValidTrade(req.Category) {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", req.Deadline); err != nil {
		return nil, ErrInvalidInput
	}

	budget, err := strconv.ParseFloat(strings.TrimSpace(req.Budget), 64)
	if err != nil || budget <= 0 {
		return nil, ErrInvalidBudget
	}

	proj := &Project{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Budget:          budget,
		BudgetFormatted: FormatBudget(budget),
		Location:        req.Location,
		Deadline:        req.Deadline,
		Category:        req.Category,
		PostedBy:        req.PostedBy,
		CreatedAt:       time.Now(),
		Status:          StatusOpen,
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			ActorID:   &proj.PostedBy,
			ProjectID: &proj.ID,
			Type:      activity.TypeProjectPosted,
			Summary:   fmt.Sprintf("posted project %q", proj.Title),
		})
	}

	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns every project, newest-first.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// Search returns the projects matching every filter predicate,
// preserving the newest-first listing order. Filters only narrow: the
// result is always a subset of List.
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]Project, error) {
	if filter.Category != "" && !actor.ValidTrade(filter.Category) {
		return nil, ErrInvalidInput
	}
	return s.repo.Search(ctx, filter)
}
