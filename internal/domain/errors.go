package domain

import "errors"

var (
	// Ingestion errors
	ErrEmptyInput        = errors.New("no transcript content")
	ErrMalformedEnvelope = errors.New("malformed transcript envelope")
	ErrUnresolvableID    = errors.New("could not resolve video ID")

	// Store errors
	ErrNotFound = errors.New("transcript not found")
)
