package schema

// ProgressMetrics is the derived scoring record for one user. TotalHours is
// capped at 60 and TotalPercentage at 100; RawHours and Clamshells are
// uncapped display values.
type ProgressMetrics struct {
	ShippedHours    float64 `json:"shipped_hours"`
	ViralHours      float64 `json:"viral_hours"`
	OtherHours      float64 `json:"other_hours"`
	TotalHours      float64 `json:"total_hours"`
	TotalPercentage float64 `json:"total_percentage"`
	RawHours        int     `json:"raw_hours"`
	Clamshells      int     `json:"clamshells"`
}

// UserMetrics is the population-analysis input for one user. TotalHours is
// the uncapped sum of effective hours across every project.
type UserMetrics struct {
	UserID       string  `json:"user_id"`
	TotalHours   float64 `json:"total_hours"`
	ProjectCount int     `json:"project_count"`
	ShippedCount int     `json:"shipped_count"`
}
