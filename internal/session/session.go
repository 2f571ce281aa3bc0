package session

import (
	"context"
	"time"
)

// Session is one signed-in visitor. The cart itself never lives here; it
// stays in the visitor's cart cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Login     string    `json:"login"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps sessions and short-lived OAuth state nonces.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, bool, error)
	Delete(ctx context.Context, id string) error

	// PutState registers a fresh OAuth state nonce; TakeState consumes it,
	// reporting whether it was present. A nonce can be taken at most once.
	PutState(ctx context.Context, state string) error
	TakeState(ctx context.Context, state string) (bool, error)
}
