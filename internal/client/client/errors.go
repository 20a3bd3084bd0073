package client

import "errors"

var (
	ErrUnavailable      = errors.New("directory unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrBadResponse      = errors.New("malformed response")
)
