package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/repository"
)

// Service handles the signed-in session lifecycle.
type Service struct {
	sessions Repository
	actors   ActorRepository
	logger   *slog.Logger
}

// NewService creates a new session service.
func NewService(sessions Repository, actors ActorRepository, logger *slog.Logger) *Service {
	return &Service{sessions: sessions, actors: actors, logger: logger}
}

// Start opens a session for the given actor and returns it.
func (s *Service) Start(ctx context.Context, actorID string) (*Session, error) {
	if actorID == "" {
		return nil, ErrInvalidInput
	}

	sess := &Session{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		Status:    StatusActive,
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("session started", "session_id", sess.ID, "actor_id", actorID)
	}

	return sess, nil
}

// Resolve returns the actor behind an active session ID.
func (s *Service) Resolve(ctx context.Context, id string) (*actor.Actor, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if sess.Status != StatusActive {
		return nil, ErrSessionClosed
	}

	act, err := s.actors.Get(ctx, sess.ActorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("resolving session actor: %w", err)
	}
	return act, nil
}

// End closes a session. Ending an unknown or already-closed session is
// not an error: logout is idempotent.
func (s *Service) End(ctx context.Context, id string) error {
	if err := s.sessions.Close(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("closing session: %w", err)
	}
	return nil
}
