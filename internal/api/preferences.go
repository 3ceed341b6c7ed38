package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/andib0/onyx/internal/db"
)

// decodePreferencesPatch decodes the patch body twice: once into the typed
// struct and once into a raw map, so an explicit `"selectedProgramId": null`
// (clear the selection) can be told apart from the field being absent.
func decodePreferencesPatch(w http.ResponseWriter, r *http.Request, maxBytes int64) (db.PreferencesPatch, bool) {
	var patch db.PreferencesPatch

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return patch, false
	}
	if err := json.Unmarshal(body, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return patch, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return patch, false
	}
	patch.ClearProgram = isJSONNull(raw["selectedProgramId"])
	patch.ClearProgramDay = isJSONNull(raw["selectedProgramDayId"])
	return patch, true
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
