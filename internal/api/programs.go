package api

import (
	"net/http"
	"strconv"
)

func (a *API) handleListSupplementRefs(w http.ResponseWriter, r *http.Request) {
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
	refs, err := a.db.ListSupplementRefs(q.Get("q"), limit)
	if err != nil {
		dbError(w, err, "supplement database")
		return
	}
	respond(w, http.StatusOK, refs)
}

func (a *API) handleListGymPrograms(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	programs, err := a.db.ListGymPrograms(userID)
	if err != nil {
		dbError(w, err, "programs")
		return
	}
	respond(w, http.StatusOK, programs)
}

func (a *API) handleGetGymProgram(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	program, err := a.db.GetGymProgram(userID, r.PathValue("id"))
	if err != nil {
		dbError(w, err, "program")
		return
	}
	respond(w, http.StatusOK, program)
}

func (a *API) handleGetProgramDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	day, err := a.db.GetProgramDay(userID, r.PathValue("id"))
	if err != nil {
		dbError(w, err, "program day")
		return
	}
	respond(w, http.StatusOK, day)
}

func (a *API) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	prefs, err := a.db.GetPreferences(userID)
	if err != nil {
		dbError(w, err, "preferences")
		return
	}
	respond(w, http.StatusOK, prefs)
}

func (a *API) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.requireUser(w, r)
	if !ok {
		return
	}
	patch, ok := decodePreferencesPatch(w, r, a.cfg.Limits.MaxBodyBytes)
	if !ok {
		return
	}
	prefs, err := a.db.UpdatePreferences(userID, patch)
	if err != nil {
		dbError(w, err, "preferences")
		return
	}
	respond(w, http.StatusOK, prefs)
}
