// Package seed holds the fixed bootstrap dataset: directory users (exactly one
// administrator), sample artists and sample artworks.
//
// Every call returns a fresh copy, so callers may mutate the result freely.
package seed

import (
	"time"

	"github.com/dmitrijs2005/artmarket/internal/models"
)

func utc(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// Users returns the bootstrap directory.
func Users() []models.User {
	return []models.User{
		{
			ID:        "admin-user",
			Name:      "Admin",
			Email:     "admin@example.com",
			Password:  "admin123",
			IsAdmin:   true,
			CreatedAt: utc(2024, time.January, 1, 0, 0),
		},
		{
			ID:        "sample-user-1",
			Name:      "John Doe",
			Email:     "john@example.com",
			Password:  "password123",
			CreatedAt: utc(2024, time.February, 15, 10, 30),
		},
		{
			ID:        "sample-user-2",
			Name:      "Jane Smith",
			Email:     "jane@example.com",
			Password:  "password123",
			CreatedAt: utc(2024, time.February, 20, 15, 45),
		},
	}
}
