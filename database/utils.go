package database

import (
	"context"
	"time"
)

// Timeouts for database operations
const (
	// ShortTimeout for pings and single document operations
	ShortTimeout = 5 * time.Second

	// MediumTimeout for reading a whole collection
	MediumTimeout = 10 * time.Second

	// LongTimeout for bulk writes during an import
	LongTimeout = 30 * time.Second
)

// WithShortTimeout derives a context from parent that expires after ShortTimeout
func WithShortTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, ShortTimeout)
}

// WithMediumTimeout derives a context from parent that expires after MediumTimeout
func WithMediumTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, MediumTimeout)
}

// WithLongTimeout derives a context from parent that expires after LongTimeout
func WithLongTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, LongTimeout)
}
