package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/andib0/onyx/internal/db"
)

func (a *API) handleExportState(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	doc, err := a.db.ExportState(userID)
	if err != nil {
		dbError(w, err, "state")
		return
	}
	respond(w, http.StatusOK, doc)
}

func (a *API) handleImportState(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	var doc db.StateDocument
	if !decodeBody(w, r, a.cfg.Limits.MaxImportBytes, &doc) {
		return
	}
	// The document is validated in full before any row is touched, so a bad
	// entry can never leave the dataset half-replaced.
	if err := validateStateDocument(&doc); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.db.ImportState(userID, &doc)
	a.auditEvent("sync.import", userID, err, started)
	if err != nil {
		dbError(w, err, "state")
		return
	}
	respondMessage(w, http.StatusOK, result, "state imported")
}

func (a *API) handleFullState(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	today := r.URL.Query().Get("date")
	if today == "" {
		today = time.Now().Format("2006-01-02")
	}
	state, err := a.db.GetFullState(userID, today)
	if err != nil {
		dbError(w, err, "state")
		return
	}
	respond(w, http.StatusOK, state)
}

func validateStateDocument(doc *db.StateDocument) error {
	for i, b := range doc.Schedule {
		if b.Start == "" || b.End == "" || b.Title == "" {
			return fmt.Errorf("schedule[%d]: start, end and title are required", i)
		}
	}
	for i, s := range doc.SupplementsList {
		if s.Item == "" {
			return fmt.Errorf("supplementsList[%d]: item is required", i)
		}
	}
	for day, meals := range doc.MealTemplatesByDay {
		for i, m := range meals {
			if m.Name == "" {
				return fmt.Errorf("mealTemplatesByDay[%s][%d]: name is required", day, i)
			}
		}
	}
	for i, l := range doc.Log {
		if l.Date == "" {
			return fmt.Errorf("log[%d]: date is required", i)
		}
	}
	return nil
}
