package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/artmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/artmarket/internal/common"
	"github.com/dmitrijs2005/artmarket/internal/logging"
	"github.com/dmitrijs2005/artmarket/internal/models"
	"github.com/dmitrijs2005/artmarket/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = models.User{ID: "admin-user", Name: "Admin", Email: "admin@example.com", IsAdmin: true}

func TestReportArtwork(t *testing.T) {
	e := newEnv(t, &fakeClient{})
	ctx := context.Background()

	r, err := e.mod.ReportArtwork(ctx, "3", " <em>Stolen</em> image ", "sample-user-1")
	require.NoError(t, err)
	assert.Equal(t, models.Report{
		ID:         "id-1",
		ArtworkID:  "3",
		ReportedBy: "sample-user-1",
		Reason:     "Stolen image",
		Status:     models.ReportPending,
		CreatedAt:  fixedNow,
	}, r)
	assert.Equal(t, []models.Report{r}, e.mod.Reports())

	// Reports survive a reload.
	m := NewModeration(e.session, e.catalog, e.repos.KV, e.ids, logging.NewDiscard())
	require.NoError(t, m.Load(ctx))
	assert.Equal(t, []models.Report{r}, m.Reports())
}

func TestReportArtwork_Errors(t *testing.T) {
	e := newEnv(t, &fakeClient{})
	ctx := context.Background()

	_, err := e.mod.ReportArtwork(ctx, "3", "   ", "u")
	require.ErrorIs(t, err, common.ErrInvalidReport)

	_, err = e.mod.ReportArtwork(ctx, "nope", "spam", "u")
	require.ErrorIs(t, err, common.ErrorNotFound)

	assert.Empty(t, e.mod.Reports())
}

func TestAdminOperations_RequireAdmin(t *testing.T) {
	e := newEnv(t, &fakeClient{})
	ctx := context.Background()

	require.ErrorIs(t, e.mod.RemoveArtwork(ctx, "1"), common.ErrNotAuthenticated)

	e.login(t, buyer)
	require.ErrorIs(t, e.mod.RemoveArtwork(ctx, "1"), common.ErrForbidden)
	require.ErrorIs(t, e.mod.RemoveArtist(ctx, "sample-artist-1"), common.ErrForbidden)
	require.ErrorIs(t, e.mod.RemoveUser(ctx, "sample-user-2"), common.ErrForbidden)
	require.ErrorIs(t, e.mod.RemoveReport(ctx, "r"), common.ErrForbidden)
	require.ErrorIs(t, e.mod.UpdateReportStatus(ctx, "r", models.ReportResolved), common.ErrForbidden)
	_, err := e.mod.Stats(ctx)
	require.ErrorIs(t, err, common.ErrForbidden)

	assert.Equal(t, seed.Artworks(), e.catalog.Artworks())
}

func TestUpdateReportStatusAndRemove(t *testing.T) {
	e := newEnv(t, &fakeClient{})
	ctx := context.Background()
	r, err := e.mod.ReportArtwork(ctx, "1", "spam", "sample-user-1")
	require.NoError(t, err)

	e.login(t, admin)

	require.ErrorIs(t, e.mod.UpdateReportStatus(ctx, r.ID, "closed"), common.ErrInvalidStatus)
	require.ErrorIs(t, e.mod.UpdateReportStatus(ctx, "missing", models.ReportReviewed), common.ErrorNotFound)

	require.NoError(t, e.mod.UpdateReportStatus(ctx, r.ID, models.ReportReviewed))
	assert.Equal(t, models.ReportReviewed, e.mod.Reports()[0].Status)

	stored, _, err := kv.GetJSON[[]models.Report](ctx, e.repos.KV, KeyReports)
	require.NoError(t, err)
	assert.Equal(t, models.ReportReviewed, stored[0].Status)

	require.NoError(t, e.mod.RemoveReport(ctx, r.ID))
	assert.Empty(t, e.mod.Reports())
	require.ErrorIs(t, e.mod.RemoveReport(ctx, r.ID), common.ErrorNotFound)
}

func TestAdminRemovals(t *testing.T) {
	e := newEnv(t, &fakeClient{})
	ctx := context.Background()
	e.login(t, admin)

	require.NoError(t, e.mod.RemoveArtwork(ctx, "6"))
	require.NoError(t, e.mod.RemoveArtist(ctx, "sample-artist-3"))
	require.NoError(t, e.mod.RemoveUser(ctx, "sample-user-2"))

	assert.Len(t, e.catalog.Artworks(), len(seed.Artworks())-1)
	assert.Len(t, e.catalog.Artists(), len(seed.Artists())-1)
	users, err := e.session.LocalUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, len(seed.Users())-1)

	require.ErrorIs(t, e.mod.RemoveArtwork(ctx, "6"), common.ErrorNotFound)
}

func TestStats(t *testing.T) {
	e := newEnv(t, &fakeClient{})
	ctx := context.Background()

	e.login(t, buyer)
	require.NoError(t, e.catalog.PurchaseArtwork(ctx, "1"))
	require.NoError(t, e.catalog.PurchaseArtwork(ctx, "1"))
	require.NoError(t, e.catalog.PurchaseArtwork(ctx, "4"))

	pending, err := e.mod.ReportArtwork(ctx, "2", "spam", buyer.ID)
	require.NoError(t, err)
	done, err := e.mod.ReportArtwork(ctx, "3", "copy", buyer.ID)
	require.NoError(t, err)

	e.login(t, admin)
	require.NoError(t, e.mod.UpdateReportStatus(ctx, done.ID, models.ReportResolved))

	st, err := e.mod.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(seed.Users()), st.TotalUsers)
	assert.Equal(t, 6, st.TotalArtworks)
	assert.Equal(t, 3, st.TotalArtists)
	assert.Equal(t, 3, st.TotalSales)
	assert.Equal(t, []models.Report{pending}, st.PendingReports)

	require.Len(t, st.RecentArtworks, 5)
	wantIDs := []string{"6", "5", "4", "3", "2"}
	for i, a := range st.RecentArtworks {
		assert.Equal(t, wantIDs[i], a.ID)
	}

	require.Len(t, st.RecentUsers, 3)
	assert.Equal(t, "sample-user-2", st.RecentUsers[0].ID)
	assert.Equal(t, "admin-user", st.RecentUsers[2].ID)
}

func TestNewest_StableAndBounded(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []models.Artwork{
		{ID: "a", CreatedAt: t0},
		{ID: "b", CreatedAt: t0.Add(time.Hour)},
		{ID: "c", CreatedAt: t0},
	}

	got := newestArtworks(in, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "a", in[0].ID, "input must not be reordered")

	assert.Empty(t, newestArtworks(nil, 5))
}
