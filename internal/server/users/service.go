// Package users implements the directory service use cases: listing users,
// checking credentials and seeding sample accounts.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/artmarket/internal/common"
	"github.com/dmitrijs2005/artmarket/internal/credentials"
	"github.com/dmitrijs2005/artmarket/internal/logging"
	"github.com/dmitrijs2005/artmarket/internal/models"
	"github.com/dmitrijs2005/artmarket/internal/server/repositories/users"
)

type Service struct {
	repo     users.Repository
	verifier credentials.Verifier
	logger   logging.Logger
}

func NewService(repo users.Repository, verifier credentials.Verifier, logger logging.Logger) *Service {
	return &Service{
		repo:     repo,
		verifier: verifier,
		logger:   logger.With("module", "users_service"),
	}
}

// GetAll returns every user without passwords.
func (s *Service) GetAll(ctx context.Context) ([]models.User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Password = ""
	}
	return list, nil
}

// Login returns the user with the given credentials, without its password.
// Unknown email and wrong password both yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.User{}, common.ErrorUnauthorized
		}
		return models.User{}, err
	}
	if !s.verifier.Verify(u.Password, password) {
		return models.User{}, common.ErrorUnauthorized
	}
	u.Password = ""
	return u, nil
}

// Seed stores list when the repository is empty. Passwords are given in
// clear text and hashed with the configured verifier.
func (s *Service) Seed(ctx context.Context, list []models.User) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Debug(ctx, "store not empty, skipping seed", "users", n)
		return nil
	}

	for _, u := range list {
		stored, err := s.verifier.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		u.Password = stored
		if err := s.repo.Create(ctx, u); err != nil {
			return err
		}
	}
	s.logger.Info(ctx, "seeded users", "count", len(list))
	return nil
}
