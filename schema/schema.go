// Package schema has shared data structures for the shipshape engine.
package schema

// UserSnapshot is one participant with their full project list, as loaded
// from the backing store. Population analysis consumes the full enumeration
// of snapshots, including users with zero projects.
type UserSnapshot struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Projects    []Project `json:"projects"`
}
