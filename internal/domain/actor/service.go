package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raedalharbi/muqawil/internal/domain/activity"
	"github.com/raedalharbi/muqawil/internal/repository"
)

// Default display names used when a registration omits one, per role.
const (
	defaultMainContractorName = "شركة الإعمار"
	defaultSubcontractorName  = "مؤسسة السباكة الفنية"
)

// Service handles actor registration, profiles and directory search.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// ActivityRepository records marketplace events. May be nil.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// NewService creates a new actor service.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, logger: logger}
}

// RegisterRequest defines actor registration inputs. Registration is
// mocked: no credential is ever checked.
type RegisterRequest struct {
	Name       string
	Role       Role
	Email      string
	Trade      TradeCategory
	Experience ExperienceLevel
	Location   string
}

// Register creates a new actor. The name falls back to a role-specific
// default when omitted.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Actor, error) {
	if req.Role != RoleMainContractor && req.Role != RoleSubcontractor {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, ErrInvalidInput
	}
	if req.Trade != "" && !ValidTrade(req.Trade) {
		return nil, ErrInvalidInput
	}
	if req.Experience != "" && !ValidExperience(req.Experience) {
		return nil, ErrInvalidInput
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		if req.Role == RoleMainContractor {
			name = defaultMainContractorName
		} else {
			name = defaultSubcontractorName
		}
	}

	act := &Actor{
		ID:         uuid.NewString(),
		Name:       name,
		Role:       req.Role,
		Email:      req.Email,
		Trade:      req.Trade,
		Experience: req.Experience,
		Location:   req.Location,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, act); err != nil {
		return nil, fmt.Errorf("creating actor: %w", err)
	}

	return act, nil
}

// Get fetches an actor by ID.
func (s *Service) Get(ctx context.Context, id string) (*Actor, error) {
	act, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("getting actor: %w", err)
	}
	return act, nil
}

// UpdateRequest carries a profile draft. Every mutable field is
// replaced wholesale on commit; ID and Role are immutable.
type UpdateRequest struct {
	Name           string
	Email          string
	Phone          string
	Bio            string
	CompanyReg     string
	Trade          TradeCategory
	Experience     ExperienceLevel
	Certifications []string
	Location       string
	Address        string
}

// UpdateProfile commits a profile draft onto the stored actor. Only
// name and email are required; no further field-level validation is
// applied beyond membership of the closed trade/experience sets.
func (s *Service) UpdateProfile(ctx context.Context, id string, req UpdateRequest) (*Actor, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, ErrInvalidInput
	}
	if req.Trade != "" && !ValidTrade(req.Trade) {
		return nil, ErrInvalidInput
	}
	if req.Experience != "" && !ValidExperience(req.Experience) {
		return nil, ErrInvalidInput
	}

	act, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("getting actor: %w", err)
	}

	act.Name = req.Name
	act.Email = req.Email
	act.Phone = req.Phone
	act.Bio = req.Bio
	act.CompanyReg = req.CompanyReg
	act.Trade = req.Trade
	act.Experience = req.Experience
	act.Certifications = req.Certifications
	act.Location = req.Location
	act.Address = req.Address

	if err := s.repo.Update(ctx, act); err != nil {
		return nil, fmt.Errorf("updating actor: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			ActorID: &act.ID,
			Type:    activity.TypeProfileUpdated,
			Summary: fmt.Sprintf("%s updated their profile", act.Name),
		})
	}

	if s.logger != nil {
		s.logger.Info("profile updated", "actor_id", act.ID)
	}

	return act, nil
}

// SearchDirectory lists subcontractors matching the filter. The query
// matches case-insensitively against name or location; the trade
// filter is an exact constraint when non-empty. Results preserve
// registration order.
func (s *Service) SearchDirectory(ctx context.Context, filter DirectoryFilter) ([]Actor, error) {
	if filter.Trade != "" && !ValidTrade(filter.Trade) {
		return nil, ErrInvalidInput
	}
	return s.repo.SearchDirectory(ctx, filter)
}
