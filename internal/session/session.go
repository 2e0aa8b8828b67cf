// Package session holds the per-visitor state that survives across requests:
// the shopping cart and, after login, the visitor's identity. Sessions are
// explicit values. A handler loads one, transforms it, and saves it back;
// nothing mutates ambient request state.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID       string           `json:"id"`
	Cart     *domain.Cart     `json:"cart"`
	Identity *domain.Identity `json:"identity,omitempty"`
}

// New creates an empty anonymous session with a fresh ID.
func New() *Session {
	return &Session{
		ID:   uuid.NewString(),
		Cart: domain.NewCart(),
	}
}

func (s *Session) LoggedIn() bool {
	return s.Identity != nil
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}

type ctxKey struct{}

// WithSession attaches the session to the request context.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session placed by the middleware, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}
