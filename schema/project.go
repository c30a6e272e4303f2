package schema

// HackatimeLink ties a project to one source project in the external
// time-tracking service. RawHours is reported by the service; HoursOverride
// is reviewer-set and wins over RawHours when present.
type HackatimeLink struct {
	ID            string   `json:"id"`
	ProjectID     string   `json:"project_id"`
	SourceName    string   `json:"source_name"`
	RawHours      float64  `json:"raw_hours"`
	HoursOverride *float64 `json:"hours_override,omitempty"`
}

// Project is one participant project. RawHours and HoursOverride are legacy
// scalar fallbacks used only when the project has no hackatime links.
type Project struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Shipped       bool            `json:"shipped"`
	Viral         bool            `json:"viral"`
	InReview      bool            `json:"in_review"`
	RawHours      float64         `json:"raw_hours"`
	HoursOverride *float64        `json:"hours_override,omitempty"`
	Links         []HackatimeLink `json:"links,omitempty"`
}
