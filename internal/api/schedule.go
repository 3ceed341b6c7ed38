package api

import (
	"net/http"
	"time"

	"github.com/andib0/onyx/internal/db"
)

func (a *API) handleListScheduleBlocks(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	blocks, err := a.db.ListScheduleBlocks(userID)
	if err != nil {
		dbError(w, err, "schedule")
		return
	}
	respond(w, http.StatusOK, blocks)
}

func (a *API) handleCreateScheduleBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Start     string `json:"start"`
		End       string `json:"end"`
		Title     string `json:"title"`
		Purpose   string `json:"purpose"`
		Good      string `json:"good"`
		Tag       string `json:"tag"`
		Readonly  bool   `json:"readonly"`
		Source    string `json:"source"`
		SortOrder int    `json:"sortOrder"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.Start == "" || req.End == "" || req.Title == "" {
		respondError(w, http.StatusBadRequest, "start, end and title are required")
		return
	}

	block, err := a.db.CreateScheduleBlock(userID, db.ScheduleBlockInput{
		Start:     req.Start,
		End:       req.End,
		Title:     req.Title,
		Purpose:   req.Purpose,
		Good:      req.Good,
		Tag:       req.Tag,
		Readonly:  req.Readonly,
		Source:    req.Source,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		dbError(w, err, "schedule block")
		return
	}
	respond(w, http.StatusCreated, block)
}

func (a *API) handleUpdateScheduleBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var patch db.ScheduleBlockPatch
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &patch) {
		return
	}
	block, err := a.db.UpdateScheduleBlock(userID, r.PathValue("id"), patch)
	if err != nil {
		dbError(w, err, "schedule block")
		return
	}
	respond(w, http.StatusOK, block)
}

func (a *API) handleDeleteScheduleBlock(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	if err := a.db.DeleteScheduleBlock(userID, r.PathValue("id")); err != nil {
		dbError(w, err, "schedule block")
		return
	}
	a.auditEvent("schedule.delete", userID, nil, started)
	respondMessage(w, http.StatusOK, nil, "deleted")
}

func (a *API) handleListCompletions(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		respondError(w, http.StatusBadRequest, "date is required")
		return
	}
	completions, err := a.db.ListCompletions(userID, date)
	if err != nil {
		dbError(w, err, "completions")
		return
	}
	respond(w, http.StatusOK, completions)
}

func (a *API) handleToggleCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		BlockID    string `json:"blockId"`
		Date       string `json:"date"`
		IsComplete bool   `json:"isComplete"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.BlockID == "" || req.Date == "" {
		respondError(w, http.StatusBadRequest, "blockId and date are required")
		return
	}
	completion, err := a.db.ToggleCompletion(userID, req.BlockID, req.Date, req.IsComplete)
	if err != nil {
		dbError(w, err, "completion")
		return
	}
	respond(w, http.StatusOK, completion)
}
