package auth

import (
	"context"
	"errors"
)

// ErrEmailExists is returned by Create when the normalized email is taken.
var ErrEmailExists = errors.New("email already exists")

// Repository stores accounts keyed by id and by normalized email.
// Lookups report absence with ok=false rather than an error.
type Repository interface {
	Create(ctx context.Context, name, email, passwordHash string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
}
