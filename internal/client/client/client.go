package client

import (
	"context"

	"github.com/dmitrijs2005/artmarket/internal/models"
)

// Client is the contract with the remote directory service.
type Client interface {
	// GetAllUsers returns every user known to the directory.
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// Login checks credentials and returns the matching user.
	Login(ctx context.Context, email, password string) (models.User, error)
	Ping(ctx context.Context) error
}
