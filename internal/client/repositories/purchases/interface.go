// Package purchases records which artworks each user has bought.
// Each user's set keeps insertion order and ignores repeats.
package purchases

import "context"

type Repository interface {
	Add(ctx context.Context, userID, artworkID string) error
	List(ctx context.Context, userID string) ([]string, error)
	Has(ctx context.Context, userID, artworkID string) (bool, error)
}
