// Package models defines the marketplace domain types shared by the client
// core and the directory service. JSON field names follow the wire shape the
// directory service and the persisted store use.
package models

import (
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/artmarket/internal/timex"
)

// User is a marketplace account.
//
// ArtistID is set iff IsArtist is true. Password is omitted from JSON when
// empty; the directory service never returns it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	IsArtist  bool      `json:"isArtist"`
	ArtistID  string    `json:"artistId,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPatch carries a partial update for a User. Nil fields are left untouched.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	IsArtist *bool
	ArtistID *string
	IsAdmin  *bool
}

// Apply returns a copy of u with the non-nil fields of p merged in.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.IsArtist != nil {
		u.IsArtist = *p.IsArtist
	}
	if p.ArtistID != nil {
		u.ArtistID = *p.ArtistID
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	return u
}

// Artist is the public profile of a User who lists artwork.
// UserID is a weak back-reference; the sample dataset leaves it empty.
type Artist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Birthplace  string    `json:"birthplace"`
	Experience  string    `json:"experience"`
	ImageURL    string    `json:"imageUrl"`
	Specialties []string  `json:"specialties"`
	JoinedDate  time.Time `json:"joinedDate"`
	UserID      string    `json:"userId,omitempty"`
}

// UnmarshalJSON accepts a date-only joinedDate as well as RFC 3339.
func (a *Artist) UnmarshalJSON(b []byte) error {
	type plain Artist
	aux := struct {
		*plain
		JoinedDate string `json:"joinedDate"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.JoinedDate = time.Time{}
	if aux.JoinedDate == "" {
		return nil
	}
	t, err := timex.ParseTime(aux.JoinedDate)
	if err != nil {
		return err
	}
	a.JoinedDate = t
	return nil
}

// ArtistProfile is the caller-supplied part of an Artist, used on first listing.
type ArtistProfile struct {
	Name        string
	Bio         string
	Location    string
	Birthplace  string
	Experience  string
	ImageURL    string
	Specialties []string
}

// Artwork is a one-of-a-kind piece offered for sale.
//
// Invariants: SoldCount >= 0 and Sold == (SoldCount >= 1).
// Artist is the denormalized display name of the owning artist.
type Artwork struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Price       float64   `json:"price"`
	Tags        []string  `json:"tags"`
	Artist      string    `json:"artist"`
	ArtistID    string    `json:"artistId"`
	Sold        bool      `json:"sold"`
	SoldCount   int       `json:"soldCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ArtworkInput is the caller-supplied part of a new listing.
type ArtworkInput struct {
	Title       string
	Description string
	ImageURL    string
	Price       float64
	Tags        []string
}

// Valid reports whether the input can become a listing.
func (in ArtworkInput) Valid() bool {
	return in.Title != "" && in.Price > 0
}

// ReportStatus is the moderation state of a Report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
)

// Valid reports whether s is a known status.
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportReviewed, ReportResolved:
		return true
	}
	return false
}

// Report flags an artwork for admin review.
type Report struct {
	ID         string       `json:"id"`
	ArtworkID  string       `json:"artworkId"`
	ReportedBy string       `json:"reportedBy"`
	Reason     string       `json:"reason"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers     int
	TotalArtworks  int
	TotalArtists   int
	TotalSales     int
	RecentUsers    []User
	RecentArtworks []Artwork
	PendingReports []Report
}
