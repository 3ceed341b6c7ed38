package api

import (
	"net/http"
	"time"

	"github.com/andib0/onyx/internal/db"
)

func (a *API) handleListSupplements(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	supplements, err := a.db.ListSupplements(userID)
	if err != nil {
		dbError(w, err, "supplements")
		return
	}
	respond(w, http.StatusOK, supplements)
}

func (a *API) handleCreateSupplement(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Item      string `json:"item"`
		Goal      string `json:"goal"`
		Dose      string `json:"dose"`
		Tier      string `json:"tier"`
		Rule      string `json:"rule"`
		TimeAt    string `json:"timeAt"`
		SortOrder int    `json:"sortOrder"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.Item == "" {
		respondError(w, http.StatusBadRequest, "item is required")
		return
	}
	supplement, err := a.db.CreateSupplement(userID, db.SupplementInput{
		Item:      req.Item,
		Goal:      req.Goal,
		Dose:      req.Dose,
		Tier:      req.Tier,
		Rule:      req.Rule,
		TimeAt:    req.TimeAt,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		dbError(w, err, "supplement")
		return
	}
	respond(w, http.StatusCreated, supplement)
}

func (a *API) handleUpdateSupplement(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var patch db.SupplementPatch
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &patch) {
		return
	}
	supplement, err := a.db.UpdateSupplement(userID, r.PathValue("id"), patch)
	if err != nil {
		dbError(w, err, "supplement")
		return
	}
	respond(w, http.StatusOK, supplement)
}

func (a *API) handleDeleteSupplement(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	if err := a.db.DeleteSupplement(userID, r.PathValue("id")); err != nil {
		dbError(w, err, "supplement")
		return
	}
	a.auditEvent("supplement.delete", userID, nil, started)
	respondMessage(w, http.StatusOK, nil, "deleted")
}

func (a *API) handleListSupplementLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	start, end := q.Get("startDate"), q.Get("endDate")
	if date := q.Get("date"); date != "" {
		start, end = date, date
	}
	logs, err := a.db.ListSupplementLogs(userID, start, end)
	if err != nil {
		dbError(w, err, "supplement logs")
		return
	}
	respond(w, http.StatusOK, logs)
}

func (a *API) handleToggleSupplementLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		SupplementID string `json:"supplementId"`
		Date         string `json:"date"`
		IsTaken      bool   `json:"isTaken"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.SupplementID == "" || req.Date == "" {
		respondError(w, http.StatusBadRequest, "supplementId and date are required")
		return
	}
	log, err := a.db.ToggleSupplementLog(userID, req.SupplementID, req.Date, req.IsTaken)
	if err != nil {
		dbError(w, err, "supplement log")
		return
	}
	respond(w, http.StatusOK, log)
}
