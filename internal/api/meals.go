package api

import (
	"net/http"
	"time"

	"github.com/andib0/onyx/internal/db"
)

func (a *API) handleListMealTemplates(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	templates, err := a.db.ListMealTemplates(userID, r.URL.Query().Get("dayOfWeek"))
	if err != nil {
		dbError(w, err, "meal templates")
		return
	}
	respond(w, http.StatusOK, templates)
}

func (a *API) handleCreateMealTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		DayOfWeek string       `json:"dayOfWeek"`
		Name      string       `json:"name"`
		Examples  string       `json:"examples"`
		Grams     *float64     `json:"grams"`
		FoodID    *string      `json:"foodId"`
		SortOrder int          `json:"sortOrder"`
		Tags      []db.MealTag `json:"tags"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.DayOfWeek == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "dayOfWeek and name are required")
		return
	}
	template, err := a.db.CreateMealTemplate(userID, db.MealTemplateInput{
		DayOfWeek: req.DayOfWeek,
		Name:      req.Name,
		Examples:  req.Examples,
		Grams:     req.Grams,
		FoodID:    req.FoodID,
		SortOrder: req.SortOrder,
		Tags:      req.Tags,
	})
	if err != nil {
		dbError(w, err, "meal template")
		return
	}
	respond(w, http.StatusCreated, template)
}

func (a *API) handleUpdateMealTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var patch db.MealTemplatePatch
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &patch) {
		return
	}
	template, err := a.db.UpdateMealTemplate(userID, r.PathValue("id"), patch)
	if err != nil {
		dbError(w, err, "meal template")
		return
	}
	respond(w, http.StatusOK, template)
}

// handleUpdateMealGrams links a meal to a food at a portion size; the macro
// tags are recomputed server-side from the food's per-100g values.
func (a *API) handleUpdateMealGrams(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Grams  float64 `json:"grams"`
		FoodID string  `json:"foodId"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.Grams <= 0 || req.FoodID == "" {
		respondError(w, http.StatusBadRequest, "grams must be positive and foodId is required")
		return
	}
	template, err := a.db.UpdateMealGrams(userID, r.PathValue("id"), req.Grams, req.FoodID)
	if err != nil {
		dbError(w, err, "meal template")
		return
	}
	respond(w, http.StatusOK, template)
}

func (a *API) handleDeleteMealTemplate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	if err := a.db.DeleteMealTemplate(userID, r.PathValue("id")); err != nil {
		dbError(w, err, "meal template")
		return
	}
	a.auditEvent("meal.delete", userID, nil, started)
	respondMessage(w, http.StatusOK, nil, "deleted")
}

func (a *API) handleListMealLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	logs, err := a.db.ListMealLogs(userID, r.URL.Query().Get("date"))
	if err != nil {
		dbError(w, err, "meal logs")
		return
	}
	respond(w, http.StatusOK, logs)
}

func (a *API) handleToggleMealLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		MealTemplateID string `json:"mealTemplateId"`
		Date           string `json:"date"`
		IsEaten        bool   `json:"isEaten"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.MealTemplateID == "" || req.Date == "" {
		respondError(w, http.StatusBadRequest, "mealTemplateId and date are required")
		return
	}
	log, err := a.db.ToggleMealLog(userID, req.MealTemplateID, req.Date, req.IsEaten)
	if err != nil {
		dbError(w, err, "meal log")
		return
	}
	respond(w, http.StatusOK, log)
}
