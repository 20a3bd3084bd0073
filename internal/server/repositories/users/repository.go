// Package users stores the accounts served by the directory service.
package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/artmarket/internal/models"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

// Repository persists directory users. Stored passwords are in the form the
// configured credentials.Verifier produced.
type Repository interface {
	Create(ctx context.Context, user models.User) error
	// GetByEmail returns common.ErrorNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (models.User, error)
	// List returns users in creation order.
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}
