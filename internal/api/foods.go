package api

import (
	"net/http"
	"strconv"

	"github.com/andib0/onyx/internal/db"
)

func (a *API) handleSearchFoods(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireUser(w, r); !ok {
		return
	}
	q := r.URL.Query()
	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	foods, err := a.db.SearchFoods(q.Get("q"), limit)
	if err != nil {
		dbError(w, err, "foods")
		return
	}
	respond(w, http.StatusOK, foods)
}

func (a *API) handleGetFood(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireUser(w, r); !ok {
		return
	}
	food, err := a.db.GetFood(r.PathValue("id"))
	if err != nil {
		dbError(w, err, "food")
		return
	}
	respond(w, http.StatusOK, food)
}

// handleCreateFood adds a custom, unverified food to the shared catalog.
func (a *API) handleCreateFood(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireUser(w, r); !ok {
		return
	}
	var req struct {
		Name            string   `json:"name"`
		Brand           string   `json:"brand"`
		CaloriesPer100g *float64 `json:"caloriesPer100g"`
		ProteinPer100g  *float64 `json:"proteinPer100g"`
		CarbsPer100g    *float64 `json:"carbsPer100g"`
		FatPer100g      *float64 `json:"fatPer100g"`
		FiberPer100g    *float64 `json:"fiberPer100g"`
		SugarPer100g    *float64 `json:"sugarPer100g"`
		SodiumMgPer100g *float64 `json:"sodiumMgPer100g"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	food, err := a.db.CreateFood(db.FoodInput{
		Name:            req.Name,
		Brand:           req.Brand,
		CaloriesPer100g: req.CaloriesPer100g,
		ProteinPer100g:  req.ProteinPer100g,
		CarbsPer100g:    req.CarbsPer100g,
		FatPer100g:      req.FatPer100g,
		FiberPer100g:    req.FiberPer100g,
		SugarPer100g:    req.SugarPer100g,
		SodiumMgPer100g: req.SodiumMgPer100g,
	})
	if err != nil {
		dbError(w, err, "food")
		return
	}
	respond(w, http.StatusCreated, food)
}

func (a *API) handleListUserFoods(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	foods, err := a.db.ListUserFoods(userID)
	if err != nil {
		dbError(w, err, "user foods")
		return
	}
	respond(w, http.StatusOK, foods)
}

func (a *API) handleAddUserFood(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		FoodID string `json:"foodId"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.FoodID == "" {
		respondError(w, http.StatusBadRequest, "foodId is required")
		return
	}
	entry, err := a.db.AddUserFood(userID, req.FoodID)
	if err != nil {
		dbError(w, err, "user food")
		return
	}
	respond(w, http.StatusCreated, entry)
}

func (a *API) handleRemoveUserFood(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	if err := a.db.RemoveUserFood(userID, r.PathValue("id")); err != nil {
		dbError(w, err, "user food")
		return
	}
	respondMessage(w, http.StatusOK, nil, "removed")
}
