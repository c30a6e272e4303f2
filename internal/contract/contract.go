// Package contract has interfaces, errors and configuration shared across
// the shipshape runtime.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/shipshapehq/shipshape/schema"
)

// ErrUserNotFound is returned when a user id does not exist in the backing
// store. It propagates to the caller; it is never recovered locally.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidHours is returned when an hour-classification input is negative
// or not a number. Invalid input is rejected, never silently clamped.
var ErrInvalidHours = errors.New("invalid hours value")

// UserStore provides read access to the backing user/project data.
type UserStore interface {
	// GetUser returns one user with the full project list, or a wrapped
	// ErrUserNotFound when the id is absent.
	GetUser(ctx context.Context, id string) (schema.UserSnapshot, error)

	// ListUsers enumerates the whole population, including users with zero
	// projects.
	ListUsers(ctx context.Context) ([]schema.UserSnapshot, error)

	// GetStatus reports connection and table size information.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// AnalysisCache holds the process-wide cluster analysis between rebuilds.
// Get returns nil while absent; IsStale reports true while absent or once
// the entry outlives the staleness window.
type AnalysisCache interface {
	Get() *schema.ClusterAnalysis
	Set(analysis *schema.ClusterAnalysis)
	IsStale(now time.Time) bool
}

// HistogramCache holds the process-wide hour histogram between rebuilds,
// with the same absent/fresh/stale lifecycle as AnalysisCache.
type HistogramCache interface {
	Get() *schema.HourHistogram
	Set(hist *schema.HourHistogram)
	IsStale(now time.Time) bool
}

// Clock abstracts wall time so staleness can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real clock.
type SystemClock struct{}

// Now returns the current wall time.
func (SystemClock) Now() time.Time { return time.Now() }

// DefaultStaleAfter is the validity window for cached population analyses.
const DefaultStaleAfter = time.Hour
