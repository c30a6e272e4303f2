// Package httpapi exposes the scoring and clustering engine over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shipshapehq/shipshape/core"
	"github.com/shipshapehq/shipshape/internal/contract"
)

type classifyBatchReq struct {
	UserIDs []string `json:"user_ids"`
}

// GET /api/v1/clusters
func GetClustersHandler(analyzer *core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, err := analyzer.GetClusterAnalysis(r.Context())
		if err != nil {
			http.Error(w, "cluster analysis: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, analysis)
	}
}

// GET /api/v1/users/{userID}/classification
func GetUserClassificationHandler(analyzer *core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(chi.URLParam(r, "userID"))
		if userID == "" {
			http.Error(w, "userID required", http.StatusBadRequest)
			return
		}
		c, err := analyzer.ClassifyUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, contract.ErrUserNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "classify user: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, c)
	}
}

// GET /api/v1/users/{userID}/progress
func GetUserProgressHandler(analyzer *core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(chi.URLParam(r, "userID"))
		if userID == "" {
			http.Error(w, "userID required", http.StatusBadRequest)
			return
		}
		m, err := analyzer.UserProgress(r.Context(), userID)
		if err != nil {
			if errors.Is(err, contract.ErrUserNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "user progress: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, struct {
			UserID   string `json:"user_id"`
			Progress any    `json:"progress"`
		}{UserID: userID, Progress: m})
	}
}

// POST /api/v1/classifications
func PostClassificationsHandler(analyzer *core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyBatchReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.UserIDs) == 0 {
			http.Error(w, "user_ids required", http.StatusBadRequest)
			return
		}
		results := analyzer.ClassifyUsers(r.Context(), req.UserIDs)
		writeJSON(w, results)
	}
}

// GET /api/v1/hours/classification?hours=12.5
func GetHourClassificationHandler(analyzer *core.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("hours"))
		if raw == "" {
			http.Error(w, "hours query parameter required", http.StatusBadRequest)
			return
		}
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid hours value: "+raw, http.StatusBadRequest)
			return
		}
		c, err := analyzer.ClassifyHours(r.Context(), hours)
		if err != nil {
			if errors.Is(err, contract.ErrInvalidHours) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "classify hours: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, c)
	}
}

// GET /healthz
func HealthHandler(store contract.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		status, err := store.GetStatus()
		if err != nil {
			http.Error(w, "store status: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, struct {
			Status string `json:"status"`
			Store  any    `json:"store"`
		}{Status: "ok", Store: status})
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
