// Package client contains the client-side plumbing for the marketplace core.
//
// It provides the Client contract for the remote directory service, an
// HTTP/JSON implementation (HTTPClient), and the bootstrap of the local
// SQLite store (InitDatabase, RunMigrations).
//
// Transport failures surface as ErrUnavailable, rejected credentials as
// ErrUnauthorized, other non-2xx answers as ErrUnexpectedStatus and
// undecodable bodies as ErrBadResponse. Match them with errors.Is.
package client
