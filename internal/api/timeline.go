package api

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/andib0/onyx/internal/db"
	"github.com/andib0/onyx/internal/timeline"
)

// handleTimeline returns the merged day view: schedule blocks plus entries
// synthesized from supplements, the weekday's meal templates, and the
// selected program day.
func (a *API) handleTimeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}

	day := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	blocks, err := a.db.ListScheduleBlocks(userID)
	if err != nil {
		dbError(w, err, "schedule")
		return
	}
	supplements, err := a.db.ListSupplements(userID)
	if err != nil {
		dbError(w, err, "supplements")
		return
	}
	meals, err := a.db.ListMealTemplates(userID, day.Weekday().String())
	if err != nil {
		dbError(w, err, "meal templates")
		return
	}

	var programDay *db.ProgramDay
	prefs, err := a.db.GetPreferences(userID)
	if err != nil {
		dbError(w, err, "preferences")
		return
	}
	if prefs.SelectedProgramDayID != nil {
		programDay, err = a.db.GetProgramDay(userID, *prefs.SelectedProgramDayID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			dbError(w, err, "program day")
			return
		}
	}

	entries := timeline.Compose(timeline.Inputs{
		Blocks:      blocks,
		Supplements: supplements,
		Meals:       meals,
		Program:     programDay,
	})

	now := time.Now()
	nowMinutes := now.Hour()*60 + now.Minute()
	current, next := timeline.CurrentNext(entries, nowMinutes)

	respond(w, http.StatusOK, map[string]any{
		"date":       day.Format("2006-01-02"),
		"nowMinutes": nowMinutes,
		"entries":    entries,
		"current":    current,
		"next":       next,
	})
}
