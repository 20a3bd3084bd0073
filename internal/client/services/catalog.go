package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/artmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/artmarket/internal/client/repositories/purchases"
	"github.com/dmitrijs2005/artmarket/internal/common"
	"github.com/dmitrijs2005/artmarket/internal/idgen"
	"github.com/dmitrijs2005/artmarket/internal/logging"
	"github.com/dmitrijs2005/artmarket/internal/models"
	"github.com/dmitrijs2005/artmarket/internal/sanitize"
	"github.com/dmitrijs2005/artmarket/internal/seed"
)

// UserState is the part of Session the Catalog depends on.
type UserState interface {
	CurrentUser() (models.User, bool)
	UpdateUser(ctx context.Context, patch models.UserPatch) error
}

// Catalog owns the artwork and artist collections. Listings and purchases
// of the current user are derived on every read.
type Catalog struct {
	mu       sync.RWMutex
	artworks []models.Artwork
	artists  []models.Artist

	session   UserState
	kv        kv.Repository
	purchases purchases.Repository
	ids       idgen.Generator
	log       logging.Logger
	now       func() time.Time

	allowRepurchase bool
}

type CatalogOption func(*Catalog)

// WithAllowRepurchase controls whether an already sold artwork can be bought
// again (each purchase increments SoldCount).
func WithAllowRepurchase(allow bool) CatalogOption {
	return func(c *Catalog) { c.allowRepurchase = allow }
}

func NewCatalog(session UserState, store kv.Repository, purchases purchases.Repository, ids idgen.Generator, log logging.Logger, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		session:         session,
		kv:              store,
		purchases:       purchases,
		ids:             ids,
		log:             log.With("component", "catalog"),
		now:             time.Now,
		allowRepurchase: true,
		artworks:        []models.Artwork{},
		artists:         []models.Artist{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads both collections from the store, seeding whichever is missing.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	artworks, ok, err := kv.GetJSON[[]models.Artwork](ctx, c.kv, KeyArtworks)
	if err != nil {
		return fmt.Errorf("load artworks: %w", err)
	}
	if !ok {
		artworks = seed.Artworks()
		if err := kv.SetJSON(ctx, c.kv, KeyArtworks, artworks); err != nil {
			return fmt.Errorf("seed artworks: %w", err)
		}
		c.log.Info(ctx, "seeded artworks", "count", len(artworks))
	}

	artists, ok, err := kv.GetJSON[[]models.Artist](ctx, c.kv, KeyArtists)
	if err != nil {
		return fmt.Errorf("load artists: %w", err)
	}
	if !ok {
		artists = seed.Artists()
		if err := kv.SetJSON(ctx, c.kv, KeyArtists, artists); err != nil {
			return fmt.Errorf("seed artists: %w", err)
		}
		c.log.Info(ctx, "seeded artists", "count", len(artists))
	}

	if artworks == nil {
		artworks = []models.Artwork{}
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	c.artworks, c.artists = artworks, artists
	return nil
}

// AddArtwork lists a new artwork for the current user. A user who is not
// yet an artist must pass a profile; an Artist is created from it and the
// user is promoted before the artwork is stored.
func (c *Catalog) AddArtwork(ctx context.Context, in models.ArtworkInput, profile *models.ArtistProfile) (models.Artwork, error) {
	u, ok := c.session.CurrentUser()
	if !ok {
		return models.Artwork{}, common.ErrNotAuthenticated
	}

	in.Title = sanitize.Text(in.Title)
	in.Description = sanitize.Text(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Tags = sanitize.Strings(in.Tags)
	if !in.Valid() {
		return models.Artwork{}, common.ErrInvalidArtwork
	}

	artistID := u.ArtistID
	if !u.IsArtist {
		if profile == nil {
			return models.Artwork{}, common.ErrArtistProfileRequired
		}
		artist, err := c.createArtist(ctx, u, *profile)
		if err != nil {
			return models.Artwork{}, err
		}
		artistID = artist.ID

		isArtist := true
		// The catalog lock is not held here: UpdateUser takes the session lock.
		if err := c.session.UpdateUser(ctx, models.UserPatch{IsArtist: &isArtist, ArtistID: &artistID}); err != nil {
			// Without the promotion a retry would create a second Artist.
			if rerr := c.dropArtist(ctx, artist.ID); rerr != nil {
				c.log.Error(ctx, "undo artist creation failed", "artist_id", artist.ID, "error", rerr)
			}
			return models.Artwork{}, fmt.Errorf("promote user to artist: %w", err)
		}
		c.log.Info(ctx, "user promoted to artist", "user_id", u.ID, "artist_id", artistID)
	}

	aw := models.Artwork{
		ID:          c.ids.NewID(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		Tags:        in.Tags,
		Artist:      u.Name,
		ArtistID:    artistID,
		CreatedAt:   c.now().UTC(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	updated := append(slices.Clip(c.artworks), aw)
	if err := kv.SetJSON(ctx, c.kv, KeyArtworks, updated); err != nil {
		return models.Artwork{}, fmt.Errorf("persist artworks: %w", err)
	}
	c.artworks = updated
	c.log.Info(ctx, "artwork listed", "artwork_id", aw.ID, "artist_id", artistID)
	return aw, nil
}

func (c *Catalog) createArtist(ctx context.Context, u models.User, p models.ArtistProfile) (models.Artist, error) {
	a := models.Artist{
		ID:          c.ids.NewID(),
		Name:        sanitize.Text(p.Name),
		Bio:         sanitize.Text(p.Bio),
		Location:    sanitize.Text(p.Location),
		Birthplace:  sanitize.Text(p.Birthplace),
		Experience:  sanitize.Text(p.Experience),
		ImageURL:    strings.TrimSpace(p.ImageURL),
		Specialties: sanitize.Strings(p.Specialties),
		JoinedDate:  c.now().UTC(),
		UserID:      u.ID,
	}
	if a.Name == "" {
		a.Name = u.Name
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	updated := append(slices.Clip(c.artists), a)
	if err := kv.SetJSON(ctx, c.kv, KeyArtists, updated); err != nil {
		return models.Artist{}, fmt.Errorf("persist artists: %w", err)
	}
	c.artists = updated
	return a, nil
}

func (c *Catalog) dropArtist(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := slices.DeleteFunc(slices.Clone(c.artists), func(a models.Artist) bool { return a.ID == id })
	if err := kv.SetJSON(ctx, c.kv, KeyArtists, updated); err != nil {
		return fmt.Errorf("persist artists: %w", err)
	}
	c.artists = updated
	return nil
}

// PurchaseArtwork marks the artwork sold for the current user and records
// the purchase. An unknown id leaves the catalog as is but is still recorded.
// The catalog write and the purchase record commit together or not at all.
func (c *Catalog) PurchaseArtwork(ctx context.Context, artworkID string) error {
	u, ok := c.session.CurrentUser()
	if !ok {
		return common.ErrNotAuthenticated
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	updated, err := c.soldLocked(ctx, artworkID)
	if err != nil {
		return err
	}

	var repeat bool
	err = c.kv.WithinTx(ctx, func(ctx context.Context, tx kv.Repository) error {
		if updated != nil {
			if err := kv.SetJSON(ctx, tx, KeyArtworks, updated); err != nil {
				return fmt.Errorf("persist artworks: %w", err)
			}
		}
		var err error
		if repeat, err = c.purchases.Has(ctx, u.ID, artworkID); err != nil {
			return fmt.Errorf("check purchase: %w", err)
		}
		if err := c.purchases.Add(ctx, u.ID, artworkID); err != nil {
			return fmt.Errorf("record purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if updated != nil {
		c.artworks = updated
	}
	c.log.Info(ctx, "artwork purchased", "artwork_id", artworkID, "user_id", u.ID, "repeat", repeat)
	return nil
}

// soldLocked returns a copy of the artworks with artworkID marked sold, or
// nil when the id is unknown. c.mu must be held.
func (c *Catalog) soldLocked(ctx context.Context, artworkID string) ([]models.Artwork, error) {
	i := slices.IndexFunc(c.artworks, func(a models.Artwork) bool { return a.ID == artworkID })
	if i < 0 {
		c.log.Warn(ctx, "purchase of unknown artwork", "artwork_id", artworkID)
		return nil, nil
	}
	if c.artworks[i].Sold && !c.allowRepurchase {
		return nil, common.ErrAlreadySold
	}

	updated := slices.Clone(c.artworks)
	updated[i].Sold = true
	updated[i].SoldCount++
	return updated, nil
}

// SearchArtworks matches query case-insensitively against title,
// description and tags. An empty query returns everything. Catalog order is
// preserved.
func (c *Catalog) SearchArtworks(query string) []models.Artwork {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if query == "" {
		return slices.Clone(c.artworks)
	}

	q := strings.ToLower(query)
	out := make([]models.Artwork, 0)
	for _, a := range c.artworks {
		if matches(a, q) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a models.Artwork, q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Description), q) {
		return true
	}
	return slices.ContainsFunc(a.Tags, func(t string) bool {
		return strings.Contains(strings.ToLower(t), q)
	})
}

func (c *Catalog) GetArtist(id string) (models.Artist, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, a := range c.artists {
		if a.ID == id {
			return a, true
		}
	}
	return models.Artist{}, false
}

func (c *Catalog) GetArtwork(id string) (models.Artwork, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, a := range c.artworks {
		if a.ID == id {
			return a, true
		}
	}
	return models.Artwork{}, false
}

func (c *Catalog) Artworks() []models.Artwork {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.artworks)
}

func (c *Catalog) Artists() []models.Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.artists)
}

// ArtworksByArtist returns the listings of one artist in catalog order.
func (c *Catalog) ArtworksByArtist(artistID string) []models.Artwork {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Artwork, 0)
	for _, a := range c.artworks {
		if a.ArtistID == artistID {
			out = append(out, a)
		}
	}
	return out
}

// MyListings returns the current user's own artworks.
func (c *Catalog) MyListings() []models.Artwork {
	u, ok := c.session.CurrentUser()
	if !ok || u.ArtistID == "" {
		return []models.Artwork{}
	}
	return c.ArtworksByArtist(u.ArtistID)
}

// MyPurchases returns the artworks the current user bought, in catalog order.
func (c *Catalog) MyPurchases(ctx context.Context) ([]models.Artwork, error) {
	u, ok := c.session.CurrentUser()
	if !ok {
		return []models.Artwork{}, nil
	}

	ids, err := c.purchases.List(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	bought := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		bought[id] = struct{}{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Artwork, 0, len(ids))
	for _, a := range c.artworks {
		if _, ok := bought[a.ID]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// RemoveArtwork deletes an artwork from the catalog.
func (c *Catalog) RemoveArtwork(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := slices.DeleteFunc(slices.Clone(c.artworks), func(a models.Artwork) bool { return a.ID == id })
	if len(updated) == len(c.artworks) {
		return common.ErrorNotFound
	}
	if err := kv.SetJSON(ctx, c.kv, KeyArtworks, updated); err != nil {
		return fmt.Errorf("persist artworks: %w", err)
	}
	c.artworks = updated
	return nil
}

// RemoveArtist deletes an artist profile. Their artworks stay listed.
func (c *Catalog) RemoveArtist(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := slices.DeleteFunc(slices.Clone(c.artists), func(a models.Artist) bool { return a.ID == id })
	if len(updated) == len(c.artists) {
		return common.ErrorNotFound
	}
	if err := kv.SetJSON(ctx, c.kv, KeyArtists, updated); err != nil {
		return fmt.Errorf("persist artists: %w", err)
	}
	c.artists = updated
	return nil
}
