package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/artmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/artmarket/internal/common"
	"github.com/dmitrijs2005/artmarket/internal/idgen"
	"github.com/dmitrijs2005/artmarket/internal/logging"
	"github.com/dmitrijs2005/artmarket/internal/models"
	"github.com/dmitrijs2005/artmarket/internal/sanitize"
)

const recentLimit = 5

// Moderation keeps artwork reports and exposes the admin operations.
// Everything except ReportArtwork and Reports requires an admin user.
type Moderation struct {
	mu      sync.RWMutex
	reports []models.Report

	session *Session
	catalog *Catalog
	kv      kv.Repository
	ids     idgen.Generator
	log     logging.Logger
	now     func() time.Time
}

func NewModeration(session *Session, catalog *Catalog, store kv.Repository, ids idgen.Generator, log logging.Logger) *Moderation {
	return &Moderation{
		session: session,
		catalog: catalog,
		kv:      store,
		ids:     ids,
		log:     log.With("component", "moderation"),
		now:     time.Now,
		reports: []models.Report{},
	}
}

// Load reads persisted reports. A missing key means no reports.
func (m *Moderation) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reports, _, err := kv.GetJSON[[]models.Report](ctx, m.kv, KeyReports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}
	if reports == nil {
		reports = []models.Report{}
	}
	m.reports = reports
	return nil
}

// ReportArtwork files a pending report against an existing artwork.
func (m *Moderation) ReportArtwork(ctx context.Context, artworkID, reason, reportedBy string) (models.Report, error) {
	reason = sanitize.Text(reason)
	if reason == "" {
		return models.Report{}, common.ErrInvalidReport
	}
	if _, ok := m.catalog.GetArtwork(artworkID); !ok {
		return models.Report{}, common.ErrorNotFound
	}

	r := models.Report{
		ID:         m.ids.NewID(),
		ArtworkID:  artworkID,
		ReportedBy: reportedBy,
		Reason:     reason,
		Status:     models.ReportPending,
		CreatedAt:  m.now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	updated := append(slices.Clip(m.reports), r)
	if err := m.persistLocked(ctx, updated); err != nil {
		return models.Report{}, err
	}
	m.log.Info(ctx, "artwork reported", "report_id", r.ID, "artwork_id", artworkID)
	return r, nil
}

func (m *Moderation) Reports() []models.Report {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.reports)
}

func (m *Moderation) UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) error {
	if err := m.requireAdmin(); err != nil {
		return err
	}
	if !status.Valid() {
		return common.ErrInvalidStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.reports, func(r models.Report) bool { return r.ID == id })
	if i < 0 {
		return common.ErrorNotFound
	}
	updated := slices.Clone(m.reports)
	updated[i].Status = status
	return m.persistLocked(ctx, updated)
}

func (m *Moderation) RemoveReport(ctx context.Context, id string) error {
	if err := m.requireAdmin(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	updated := slices.DeleteFunc(slices.Clone(m.reports), func(r models.Report) bool { return r.ID == id })
	if len(updated) == len(m.reports) {
		return common.ErrorNotFound
	}
	return m.persistLocked(ctx, updated)
}

func (m *Moderation) RemoveArtwork(ctx context.Context, id string) error {
	if err := m.requireAdmin(); err != nil {
		return err
	}
	if err := m.catalog.RemoveArtwork(ctx, id); err != nil {
		return err
	}
	m.log.Info(ctx, "artwork removed", "artwork_id", id)
	return nil
}

func (m *Moderation) RemoveArtist(ctx context.Context, id string) error {
	if err := m.requireAdmin(); err != nil {
		return err
	}
	if err := m.catalog.RemoveArtist(ctx, id); err != nil {
		return err
	}
	m.log.Info(ctx, "artist removed", "artist_id", id)
	return nil
}

func (m *Moderation) RemoveUser(ctx context.Context, id string) error {
	if err := m.requireAdmin(); err != nil {
		return err
	}
	if err := m.session.RemoveUser(ctx, id); err != nil {
		return err
	}
	m.log.Info(ctx, "user removed", "user_id", id)
	return nil
}

// Stats summarises the marketplace for the admin dashboard. Recent lists
// hold the newest entries first.
func (m *Moderation) Stats(ctx context.Context) (models.Stats, error) {
	if err := m.requireAdmin(); err != nil {
		return models.Stats{}, err
	}

	users, err := m.session.LocalUsers(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("read users: %w", err)
	}
	artworks := m.catalog.Artworks()

	st := models.Stats{
		TotalUsers:     len(users),
		TotalArtworks:  len(artworks),
		TotalArtists:   len(m.catalog.Artists()),
		RecentUsers:    newestUsers(users, recentLimit),
		RecentArtworks: newestArtworks(artworks, recentLimit),
		PendingReports: []models.Report{},
	}
	for _, a := range artworks {
		st.TotalSales += a.SoldCount
	}
	for _, r := range m.Reports() {
		if r.Status == models.ReportPending {
			st.PendingReports = append(st.PendingReports, r)
		}
	}
	return st, nil
}

func (m *Moderation) requireAdmin() error {
	u, ok := m.session.CurrentUser()
	if !ok {
		return common.ErrNotAuthenticated
	}
	if !u.IsAdmin {
		return common.ErrForbidden
	}
	return nil
}

func (m *Moderation) persistLocked(ctx context.Context, reports []models.Report) error {
	if err := kv.SetJSON(ctx, m.kv, KeyReports, reports); err != nil {
		return fmt.Errorf("persist reports: %w", err)
	}
	m.reports = reports
	return nil
}

func newestUsers(in []models.User, n int) []models.User {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b models.User) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out[:min(n, len(out))]
}

func newestArtworks(in []models.Artwork, n int) []models.Artwork {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b models.Artwork) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out[:min(n, len(out))]
}
