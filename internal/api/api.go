// Package api exposes the HTTP surface: auth, per-entity CRUD, the sync
// import/export endpoints, and the composed state reads.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/andib0/onyx/internal/auth"
	"github.com/andib0/onyx/internal/config"
	"github.com/andib0/onyx/internal/db"
	"github.com/andib0/onyx/pkg/audit"
)

type API struct {
	db    *db.DB
	auth  *auth.Auth
	audit audit.Logger
	cfg   *config.Config
}

func New(database *db.DB, a *auth.Auth, auditLog audit.Logger, cfg *config.Config) *API {
	return &API{db: database, auth: a, audit: auditLog, cfg: cfg}
}

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	limiter := NewRateLimiter(a.cfg.Limits.RateLimit, time.Duration(a.cfg.Limits.RateWindowSec)*time.Second)

	// Auth
	mux.HandleFunc("POST /api/auth/register", RateLimitMiddleware(limiter, a.handleRegister))
	mux.HandleFunc("POST /api/auth/login", RateLimitMiddleware(limiter, a.handleLogin))
	mux.HandleFunc("POST /api/auth/refresh", RateLimitMiddleware(limiter, a.handleRefresh))
	mux.HandleFunc("POST /api/auth/logout", a.handleLogout)
	mux.HandleFunc("GET /api/auth/me", a.handleMe)

	// Schedule blocks & completions
	mux.HandleFunc("GET /api/schedule", a.handleListScheduleBlocks)
	mux.HandleFunc("POST /api/schedule", a.handleCreateScheduleBlock)
	mux.HandleFunc("PUT /api/schedule/{id}", a.handleUpdateScheduleBlock)
	mux.HandleFunc("DELETE /api/schedule/{id}", a.handleDeleteScheduleBlock)
	mux.HandleFunc("GET /api/completions", a.handleListCompletions)
	mux.HandleFunc("POST /api/completions/toggle", a.handleToggleCompletion)

	// Supplements & intake logs
	mux.HandleFunc("GET /api/supplements", a.handleListSupplements)
	mux.HandleFunc("POST /api/supplements", a.handleCreateSupplement)
	mux.HandleFunc("PUT /api/supplements/{id}", a.handleUpdateSupplement)
	mux.HandleFunc("DELETE /api/supplements/{id}", a.handleDeleteSupplement)
	mux.HandleFunc("GET /api/supplement-logs", a.handleListSupplementLogs)
	mux.HandleFunc("POST /api/supplement-logs/toggle", a.handleToggleSupplementLog)

	// Meal templates & meal logs
	mux.HandleFunc("GET /api/meals", a.handleListMealTemplates)
	mux.HandleFunc("POST /api/meals", a.handleCreateMealTemplate)
	mux.HandleFunc("PUT /api/meals/{id}", a.handleUpdateMealTemplate)
	mux.HandleFunc("PUT /api/meals/{id}/grams", a.handleUpdateMealGrams)
	mux.HandleFunc("DELETE /api/meals/{id}", a.handleDeleteMealTemplate)
	mux.HandleFunc("GET /api/meal-logs", a.handleListMealLogs)
	mux.HandleFunc("POST /api/meal-logs/toggle", a.handleToggleMealLog)

	// Daily logs
	mux.HandleFunc("GET /api/logs", a.handleListDailyLogs)
	mux.HandleFunc("GET /api/logs/stats", a.handleDailyLogStats)
	mux.HandleFunc("GET /api/logs/{date}", a.handleGetDailyLog)
	mux.HandleFunc("POST /api/logs", a.handleUpsertDailyLog)
	mux.HandleFunc("DELETE /api/logs/{id}", a.handleDeleteDailyLog)

	// Foods
	mux.HandleFunc("GET /api/foods/search", a.handleSearchFoods)
	mux.HandleFunc("GET /api/foods/{id}", a.handleGetFood)
	mux.HandleFunc("POST /api/foods", a.handleCreateFood)
	mux.HandleFunc("GET /api/user-foods", a.handleListUserFoods)
	mux.HandleFunc("POST /api/user-foods", a.handleAddUserFood)
	mux.HandleFunc("DELETE /api/user-foods/{id}", a.handleRemoveUserFood)

	// Supplement reference database
	mux.HandleFunc("GET /api/supplement-database", a.handleListSupplementRefs)

	// Gym programs
	mux.HandleFunc("GET /api/programs", a.handleListGymPrograms)
	mux.HandleFunc("GET /api/programs/{id}", a.handleGetGymProgram)
	mux.HandleFunc("GET /api/program-days/{id}", a.handleGetProgramDay)

	// Preferences
	mux.HandleFunc("GET /api/preferences", a.handleGetPreferences)
	mux.HandleFunc("PUT /api/preferences", a.handleUpdatePreferences)

	// Sync
	mux.HandleFunc("GET /api/sync/export", a.handleExportState)
	mux.HandleFunc("POST /api/sync/import", a.handleImportState)
	mux.HandleFunc("GET /api/sync/full-state", a.handleFullState)

	// Timeline
	mux.HandleFunc("GET /api/timeline", a.handleTimeline)

	mux.HandleFunc("GET /api/health", a.handleHealth)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Helpers ---

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, data any, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data, Message: msg})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// dbError maps storage errors onto the uniform taxonomy. Unknown errors are
// logged server-side and surfaced as an opaque 500.
func dbError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		respondError(w, http.StatusNotFound, what+" not found")
	case strings.Contains(err.Error(), "UNIQUE"):
		respondError(w, http.StatusConflict, "Record already exists")
	case strings.Contains(err.Error(), "FOREIGN KEY"):
		respondError(w, http.StatusBadRequest, "referenced record does not exist")
	default:
		slog.Error("db operation failed", "what", what, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// requireUser resolves the bearer token to a user id; writes 401 when absent.
func (a *API) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims := a.auth.ExtractClaims(r)
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return claims.UserID, true
}

// decodeBody reads a JSON body capped at maxBytes into dst; writes 400 on
// malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// decodeInto reads a JSON body without writing an error response; used where
// the body is an optional fallback.
func decodeInto(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func (a *API) auditEvent(action, userID string, err error, started time.Time) {
	entry := &audit.Entry{
		Action:     action,
		UserID:     userID,
		DurationMs: time.Since(started).Milliseconds(),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	a.audit.LogAsync(entry)
}
