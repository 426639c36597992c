package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/raedalharbi/muqawil/internal/domain/actor"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type identityKey struct{}

type identity struct {
	actor     *actor.Actor
	sessionID string
}

// SessionResolver resolves the signed-in actor from a session ID.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*actor.Actor, error)
}

// ActorFromContext returns the signed-in actor, if present.
func ActorFromContext(ctx context.Context) (*actor.Actor, bool) {
	id, ok := ctx.Value(identityKey{}).(identity)
	if !ok {
		return nil, false
	}
	return id.actor, true
}

// SessionIDFromContext returns the current session ID, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityKey{}).(identity)
	if !ok {
		return "", false
	}
	return id.sessionID, true
}

// AuthMiddleware enforces bearer session authentication. The token is
// the session ID handed out at login; holding it is the whole proof of
// identity in this mock-auth model.
func AuthMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			act, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				http.Error(w, "invalid session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity{actor: act, sessionID: token})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
