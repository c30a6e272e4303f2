package schema

import "time"

// WhaleThresholds are the minimums a user must meet on every dimension to be
// eligible for the whale bucket.
type WhaleThresholds struct {
	MinHours    float64 `json:"min_hours"`
	MinProjects float64 `json:"min_projects"`
	MinShipped  float64 `json:"min_shipped"`
}

// NewbieThresholds are the maximums a user must stay under on every
// dimension to land in the newbie bucket.
type NewbieThresholds struct {
	MaxHours    float64 `json:"max_hours"`
	MaxProjects float64 `json:"max_projects"`
	MaxShipped  float64 `json:"max_shipped"`
}

// ShipperRange is the inter-quartile band that describes typical shippers.
// Informational only; shipper is the catch-all bucket, not a hard gate.
type ShipperRange struct {
	MinHours    float64 `json:"min_hours"`
	MaxHours    float64 `json:"max_hours"`
	MinProjects float64 `json:"min_projects"`
	MaxProjects float64 `json:"max_projects"`
	MinShipped  float64 `json:"min_shipped"`
	MaxShipped  float64 `json:"max_shipped"`
}

// HighCutoffs are the p75 values per dimension. A user counting as "high" on
// at least two dimensions is a whale candidate.
type HighCutoffs struct {
	Hours    float64 `json:"hours"`
	Projects float64 `json:"projects"`
	Shipped  float64 `json:"shipped"`
}

// ClusterBucket holds the membership of one behavioral cluster.
type ClusterBucket struct {
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
	UserIDs    []string `json:"user_ids"`
}

// DimensionStats are the population statistics for a single dimension.
type DimensionStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	P90    float64 `json:"p90"`
}

// PopulationStats groups per-dimension statistics for the whole population.
type PopulationStats struct {
	Hours    DimensionStats `json:"hours"`
	Projects DimensionStats `json:"projects"`
	Shipped  DimensionStats `json:"shipped"`
}

// ClusterAnalysis is the full population clustering result. It is built from
// every user in the backing store and cached in-process until stale.
type ClusterAnalysis struct {
	TotalUsers int `json:"total_users"`

	Whales   ClusterBucket `json:"whales"`
	Shippers ClusterBucket `json:"shippers"`
	Newbies  ClusterBucket `json:"newbies"`

	Whale   WhaleThresholds  `json:"whale_thresholds"`
	Newbie  NewbieThresholds `json:"newbie_thresholds"`
	Shipper ShipperRange     `json:"shipper_range"`
	High    HighCutoffs      `json:"high_cutoffs"`

	Stats PopulationStats `json:"stats"`

	LastUpdated time.Time `json:"last_updated"`
}

// MemberCategory returns the bucket a user was assigned to when the analysis
// was built, or false if the user was not part of the analyzed population.
func (a *ClusterAnalysis) MemberCategory(userID string) (Category, bool) {
	for _, id := range a.Whales.UserIDs {
		if id == userID {
			return WhaleCategory, true
		}
	}
	for _, id := range a.Newbies.UserIDs {
		if id == userID {
			return NewbieCategory, true
		}
	}
	for _, id := range a.Shippers.UserIDs {
		if id == userID {
			return ShipperCategory, true
		}
	}
	return "", false
}

// UserClassification is the single-user classification result. Percentiles
// is the coarse two-bucket indicator per dimension ("75th percentile" or
// "25th percentile"), not a true percentile rank.
type UserClassification struct {
	UserID      string            `json:"user_id"`
	Category    Category          `json:"category"`
	Metrics     UserMetrics       `json:"metrics"`
	Percentiles map[string]string `json:"percentiles"`
	Description string            `json:"description"`
}

// ClassificationResult is one entry of a bulk classification. Error is set
// instead of Classification when that user failed; one user's failure never
// fails the batch.
type ClassificationResult struct {
	UserID         string              `json:"user_id"`
	Classification *UserClassification `json:"classification,omitempty"`
	Error          string              `json:"error,omitempty"`
}

// HourHistogram holds the percentile cut points over every project's
// effective hours, used to band individual project effort.
type HourHistogram struct {
	ProjectCount int       `json:"project_count"`
	P25          float64   `json:"p25"`
	P50          float64   `json:"p50"`
	P75          float64   `json:"p75"`
	P90          float64   `json:"p90"`
	LastUpdated  time.Time `json:"last_updated"`
}

// HourClassification is the banding result for a single raw hour value.
type HourClassification struct {
	Hours       float64  `json:"hours"`
	Band        HourBand `json:"band"`
	Description string   `json:"description"`
}
