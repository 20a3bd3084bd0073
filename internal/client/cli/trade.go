package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artmarket/internal/models"
)

func (a *App) Sell(ctx context.Context) error {
	u, ok := a.session.CurrentUser()
	if !ok {
		return errLoginRequired
	}

	var in models.ArtworkInput
	var err error
	if in.Title, err = getSimpleText(a.reader, "Enter title", a.out); err != nil {
		return err
	}
	if in.Description, err = getSimpleText(a.reader, "Enter description", a.out); err != nil {
		return err
	}
	if in.ImageURL, err = getSimpleText(a.reader, "Enter image URL", a.out); err != nil {
		return err
	}
	if in.Price, err = getPrice(a.reader, "Enter price", a.out); err != nil {
		return err
	}
	if in.Tags, err = getList(a.reader, "Enter tags", a.out); err != nil {
		return err
	}

	var profile *models.ArtistProfile
	if !u.IsArtist {
		printlnFn("First listing: tell buyers about yourself")
		p, err := a.readProfile(u)
		if err != nil {
			return err
		}
		profile = &p
	}

	aw, err := a.catalog.AddArtwork(ctx, in, profile)
	if err != nil {
		return err
	}
	printlnFn("Listed", aw.Title, "with id", aw.ID)
	return nil
}

func (a *App) readProfile(u models.User) (models.ArtistProfile, error) {
	var p models.ArtistProfile
	var err error
	if p.Name, err = getSimpleText(a.reader, fmt.Sprintf("Enter artist name (empty for %q)", u.Name), a.out); err != nil {
		return p, err
	}
	if p.Bio, err = getSimpleText(a.reader, "Enter bio", a.out); err != nil {
		return p, err
	}
	if p.Location, err = getSimpleText(a.reader, "Enter location", a.out); err != nil {
		return p, err
	}
	if p.Birthplace, err = getSimpleText(a.reader, "Enter birthplace", a.out); err != nil {
		return p, err
	}
	if p.Experience, err = getSimpleText(a.reader, "Enter experience", a.out); err != nil {
		return p, err
	}
	if p.ImageURL, err = getSimpleText(a.reader, "Enter portrait URL", a.out); err != nil {
		return p, err
	}
	if p.Specialties, err = getList(a.reader, "Enter specialties", a.out); err != nil {
		return p, err
	}
	return p, nil
}

func (a *App) Buy(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}
	id, err := requireArg(args, "artwork id")
	if err != nil {
		return err
	}
	if err := a.catalog.PurchaseArtwork(ctx, id); err != nil {
		return err
	}
	printlnFn("Purchased", id)
	return nil
}

func (a *App) Listings(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}
	works := a.catalog.MyListings()
	if len(works) == 0 {
		printlnFn("You have no listings")
		return nil
	}
	return a.printArtworks(works)
}

func (a *App) Purchases(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}
	works, err := a.catalog.MyPurchases(ctx)
	if err != nil {
		return err
	}
	if len(works) == 0 {
		printlnFn("You have no purchases")
		return nil
	}
	return a.printArtworks(works)
}

func (a *App) Report(ctx context.Context, args []string) error {
	u, ok := a.session.CurrentUser()
	if !ok {
		return errLoginRequired
	}
	id, err := requireArg(args, "artwork id")
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Enter reason", a.out)
	if err != nil {
		return err
	}
	r, err := a.moderation.ReportArtwork(ctx, id, reason, u.ID)
	if err != nil {
		return err
	}
	printlnFn("Report filed with id", r.ID)
	return nil
}
