package core

import (
	"context"
	"math"
	"sync"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
)

// Analyzer is the engine facade. It serves population analyses from caches,
// rebuilding from the user store when stale, and answers single-user and
// single-value queries against them.
type Analyzer struct {
	store     contract.UserStore
	clusters  contract.AnalysisCache
	histogram contract.HistogramCache
	clock     contract.Clock

	// rebuildMu single-flights rebuilds so concurrent callers hitting a
	// stale cache trigger one store scan, not many.
	rebuildMu sync.Mutex
}

// NewAnalyzer creates an Analyzer over the given store and caches.
func NewAnalyzer(store contract.UserStore, clusters contract.AnalysisCache, histogram contract.HistogramCache, clock contract.Clock) *Analyzer {
	return &Analyzer{
		store:     store,
		clusters:  clusters,
		histogram: histogram,
		clock:     clock,
	}
}

// GetClusterAnalysis returns the current population clustering, rebuilding it
// from the store when the cached copy is absent or stale.
func (a *Analyzer) GetClusterAnalysis(ctx context.Context) (*schema.ClusterAnalysis, error) {
	if !a.clusters.IsStale(a.clock.Now()) {
		return a.clusters.Get(), nil
	}

	a.rebuildMu.Lock()
	defer a.rebuildMu.Unlock()

	// Another caller may have rebuilt while we waited for the lock.
	if !a.clusters.IsStale(a.clock.Now()) {
		return a.clusters.Get(), nil
	}

	users, err := a.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	analysis := BuildClusterAnalysis(users, a.clock.Now())
	a.clusters.Set(analysis)
	return analysis, nil
}

// GetHourHistogram returns the current per-project hour histogram, rebuilding
// it from the store when the cached copy is absent or stale.
func (a *Analyzer) GetHourHistogram(ctx context.Context) (*schema.HourHistogram, error) {
	if !a.histogram.IsStale(a.clock.Now()) {
		return a.histogram.Get(), nil
	}

	a.rebuildMu.Lock()
	defer a.rebuildMu.Unlock()

	if !a.histogram.IsStale(a.clock.Now()) {
		return a.histogram.Get(), nil
	}

	users, err := a.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	hist := BuildHourHistogram(users, a.clock.Now())
	a.histogram.Set(hist)
	return hist, nil
}

// UserProgress computes the capped progress score for one user.
func (a *Analyzer) UserProgress(ctx context.Context, userID string) (schema.ProgressMetrics, error) {
	user, err := a.store.GetUser(ctx, userID)
	if err != nil {
		return schema.ProgressMetrics{}, err
	}
	return CalculateProgress(user.Projects), nil
}

// ClassifyUser assigns one user to a behavioral cluster. Users that were part
// of the analyzed population keep their bucket from the analysis; users added
// since the last rebuild classify against the same thresholds.
func (a *Analyzer) ClassifyUser(ctx context.Context, userID string) (schema.UserClassification, error) {
	analysis, err := a.GetClusterAnalysis(ctx)
	if err != nil {
		return schema.UserClassification{}, err
	}

	user, err := a.store.GetUser(ctx, userID)
	if err != nil {
		return schema.UserClassification{}, err
	}
	m := ComputeUserMetrics(&user)

	category, ok := analysis.MemberCategory(userID)
	if !ok {
		category = classifyAgainst(analysis, m)
	}

	return schema.UserClassification{
		UserID:      userID,
		Category:    category,
		Metrics:     m,
		Percentiles: coarsePercentiles(analysis, m),
		Description: schema.CategoryDescription(category),
	}, nil
}

// ClassifyUsers classifies a batch of users. One user's failure is recorded
// on its own entry and never fails the batch.
func (a *Analyzer) ClassifyUsers(ctx context.Context, userIDs []string) []schema.ClassificationResult {
	results := make([]schema.ClassificationResult, 0, len(userIDs))
	for _, id := range userIDs {
		c, err := a.ClassifyUser(ctx, id)
		if err != nil {
			results = append(results, schema.ClassificationResult{UserID: id, Error: err.Error()})
			continue
		}
		results = append(results, schema.ClassificationResult{UserID: id, Classification: &c})
	}
	return results
}

// ClassifyHours bands a raw hour value against the population histogram.
// Input is validated before any store access.
func (a *Analyzer) ClassifyHours(ctx context.Context, hours float64) (schema.HourClassification, error) {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return schema.HourClassification{}, contract.ErrInvalidHours
	}
	hist, err := a.GetHourHistogram(ctx)
	if err != nil {
		return schema.HourClassification{}, err
	}
	return ClassifyHourValue(hist, hours)
}

// Warmup pre-builds both caches. It is best-effort: a failed build is logged
// and never aborts startup.
func (a *Analyzer) Warmup(ctx context.Context) {
	if _, err := a.GetClusterAnalysis(ctx); err != nil {
		contract.LogWarn("cluster analysis warmup failed", err)
	}
	if _, err := a.GetHourHistogram(ctx); err != nil {
		contract.LogWarn("hour histogram warmup failed", err)
	}
}
