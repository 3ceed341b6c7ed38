package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/andib0/onyx/internal/db"
)

func (a *API) handleListDailyLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
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
	logs, err := a.db.ListDailyLogs(userID, q.Get("startDate"), q.Get("endDate"), limit)
	if err != nil {
		dbError(w, err, "daily logs")
		return
	}
	respond(w, http.StatusOK, logs)
}

func (a *API) handleGetDailyLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	log, err := a.db.GetDailyLog(userID, r.PathValue("date"))
	if err != nil {
		dbError(w, err, "daily log")
		return
	}
	respond(w, http.StatusOK, log)
}

func (a *API) handleUpsertDailyLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Date  string `json:"date"`
		Day   string `json:"day"`
		BW    string `json:"bw"`
		Sleep string `json:"sleep"`
		Steps string `json:"steps"`
		Top   string `json:"top"`
		Notes string `json:"notes"`
	}
	if !decodeBody(w, r, a.cfg.Limits.MaxBodyBytes, &req) {
		return
	}
	if req.Date == "" {
		respondError(w, http.StatusBadRequest, "date is required")
		return
	}
	log, err := a.db.UpsertDailyLog(userID, db.DailyLogInput{
		Date:  req.Date,
		Day:   req.Day,
		BW:    req.BW,
		Sleep: req.Sleep,
		Steps: req.Steps,
		Top:   req.Top,
		Notes: req.Notes,
	})
	if err != nil {
		dbError(w, err, "daily log")
		return
	}
	respond(w, http.StatusOK, log)
}

func (a *API) handleDeleteDailyLog(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	if err := a.db.DeleteDailyLog(userID, r.PathValue("id")); err != nil {
		dbError(w, err, "daily log")
		return
	}
	a.auditEvent("log.delete", userID, nil, started)
	respondMessage(w, http.StatusOK, nil, "deleted")
}

func (a *API) handleDailyLogStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "invalid days")
			return
		}
		days = n
	}
	stats, err := a.db.GetDailyLogStats(userID, days)
	if err != nil {
		dbError(w, err, "daily log stats")
		return
	}
	respond(w, http.StatusOK, stats)
}
