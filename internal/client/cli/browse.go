package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/artmarket/internal/common"
	"github.com/dmitrijs2005/artmarket/internal/models"
)

func (a *App) List(ctx context.Context, args []string) error {
	artworks := a.catalog.SearchArtworks(strings.Join(args, " "))
	if len(artworks) == 0 {
		printlnFn("No artworks found")
		return nil
	}
	return a.printArtworks(artworks)
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := requireArg(args, "artwork id")
	if err != nil {
		return err
	}
	aw, ok := a.catalog.GetArtwork(id)
	if !ok {
		return common.ErrorNotFound
	}
	fmt.Fprintf(a.out, "%s by %s\n", aw.Title, aw.Artist)
	fmt.Fprintf(a.out, "  id:     %s\n", aw.ID)
	fmt.Fprintf(a.out, "  price:  %.2f\n", aw.Price)
	fmt.Fprintf(a.out, "  tags:   %s\n", strings.Join(aw.Tags, ", "))
	fmt.Fprintf(a.out, "  status: %s\n", saleStatus(aw))
	if aw.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", aw.Description)
	}
	return nil
}

func (a *App) Artists(ctx context.Context) error {
	artists := a.catalog.Artists()
	if len(artists) == 0 {
		printlnFn("No artists yet")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tSPECIALTIES")
	for _, ar := range artists {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ar.ID, ar.Name, ar.Location, strings.Join(ar.Specialties, ", "))
	}
	return w.Flush()
}

func (a *App) Artist(ctx context.Context, args []string) error {
	id, err := requireArg(args, "artist id")
	if err != nil {
		return err
	}
	ar, ok := a.catalog.GetArtist(id)
	if !ok {
		return common.ErrorNotFound
	}
	fmt.Fprintf(a.out, "%s (%s)\n", ar.Name, ar.Location)
	if ar.Bio != "" {
		fmt.Fprintf(a.out, "  %s\n", ar.Bio)
	}
	works := a.catalog.ArtworksByArtist(ar.ID)
	if len(works) == 0 {
		return nil
	}
	return a.printArtworks(works)
}

func (a *App) printArtworks(artworks []models.Artwork) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tARTIST\tPRICE\tSTATUS")
	for _, aw := range artworks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", aw.ID, aw.Title, aw.Artist, aw.Price, saleStatus(aw))
	}
	return w.Flush()
}

func saleStatus(aw models.Artwork) string {
	switch {
	case aw.SoldCount > 1:
		return fmt.Sprintf("sold x%d", aw.SoldCount)
	case aw.Sold:
		return "sold"
	}
	return "available"
}
