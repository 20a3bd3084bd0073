// Package common defines shared sentinel errors and small helpers used across
// the client core and the directory service. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Session errors.
	ErrNotAuthenticated = errors.New("no active user")

	// Catalog errors.
	ErrArtistProfileRequired = errors.New("artist profile required for first listing")
	ErrInvalidArtwork        = errors.New("artwork needs a title and a positive price")
	ErrAlreadySold           = errors.New("artwork already sold")

	// Moderation errors.
	ErrInvalidStatus = errors.New("invalid report status")
	ErrInvalidReport = errors.New("report needs a reason")
	ErrForbidden     = errors.New("admin rights required")
)
