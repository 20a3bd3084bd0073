package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/artmarket/internal/common"
	"github.com/dmitrijs2005/artmarket/internal/models"
)

func (a *App) Reports(ctx context.Context) error {
	if !a.isAdmin() {
		return common.ErrForbidden
	}
	reports := a.moderation.Reports()
	if len(reports) == 0 {
		printlnFn("No reports")
		return nil
	}
	return a.printReports(reports)
}

func (a *App) Resolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: resolve <report id> <%s|%s|%s>",
			models.ReportPending, models.ReportReviewed, models.ReportResolved)
	}
	if err := a.moderation.UpdateReportStatus(ctx, args[0], models.ReportStatus(args[1])); err != nil {
		return err
	}
	printlnFn("Report", args[0], "is now", args[1])
	return nil
}

func (a *App) RemoveReport(ctx context.Context, args []string) error {
	return a.remove(ctx, args, "report id", a.moderation.RemoveReport)
}

func (a *App) RemoveArtwork(ctx context.Context, args []string) error {
	return a.remove(ctx, args, "artwork id", a.moderation.RemoveArtwork)
}

func (a *App) RemoveArtist(ctx context.Context, args []string) error {
	return a.remove(ctx, args, "artist id", a.moderation.RemoveArtist)
}

func (a *App) RemoveUser(ctx context.Context, args []string) error {
	return a.remove(ctx, args, "user id", a.moderation.RemoveUser)
}

func (a *App) remove(ctx context.Context, args []string, what string, fn func(context.Context, string) error) error {
	id, err := requireArg(args, what)
	if err != nil {
		return err
	}
	if err := fn(ctx, id); err != nil {
		return err
	}
	printlnFn("Removed", id)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s, err := a.moderation.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "users: %d  artworks: %d  artists: %d  sales: %d\n",
		s.TotalUsers, s.TotalArtworks, s.TotalArtists, s.TotalSales)

	if len(s.RecentUsers) > 0 {
		fmt.Fprintln(a.out, "Newest users:")
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, u := range s.RecentUsers {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", u.ID, u.Email, u.CreatedAt.Format("2006-01-02"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	if len(s.RecentArtworks) > 0 {
		fmt.Fprintln(a.out, "Newest artworks:")
		if err := a.printArtworks(s.RecentArtworks); err != nil {
			return err
		}
	}
	if len(s.PendingReports) > 0 {
		fmt.Fprintln(a.out, "Pending reports:")
		return a.printReports(s.PendingReports)
	}
	return nil
}

func (a *App) printReports(reports []models.Report) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tARTWORK\tSTATUS\tREASON")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.ArtworkID, r.Status, r.Reason)
	}
	return w.Flush()
}
