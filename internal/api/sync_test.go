package api

import (
	"net/http"
	"testing"

	"github.com/andib0/onyx/internal/db"
)

func TestImportStateValidation(t *testing.T) {
	ts := newTestServer(t)
	user := ts.registerUser(t, "import-bad@example.com")

	cases := []struct {
		name string
		doc  map[string]any
	}{
		{"block missing title", map[string]any{
			"schedule": []map[string]any{{"start": "06:00", "end": "07:00"}},
		}},
		{"supplement missing item", map[string]any{
			"supplementsList": []map[string]any{{"dose": "5g"}},
		}},
		{"meal missing name", map[string]any{
			"mealTemplatesByDay": map[string]any{
				"Monday": []map[string]any{{"examples": "oats"}},
			},
		}},
		{"log missing date", map[string]any{
			"log": []map[string]any{{"bw": "82"}},
		}},
	}
	for _, c := range cases {
		resp := ts.request(t, "POST", "/api/sync/import", user.AccessToken, c.doc)
		if resp.Status != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", c.name, resp.Status)
		}
	}

	// Nothing was written by the rejected documents.
	export := ts.request(t, "GET", "/api/sync/export", user.AccessToken, nil)
	var doc db.StateDocument
	export.decode(t, &doc)
	if len(doc.Schedule) != 0 || len(doc.SupplementsList) != 0 {
		t.Errorf("rejected imports left rows behind: %+v", doc)
	}
}

func TestImportExportOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	user := ts.registerUser(t, "import@example.com")

	resp := ts.request(t, "POST", "/api/sync/import", user.AccessToken, map[string]any{
		"schedule": []map[string]any{
			{"id": "local-1", "start": "06:00", "end": "07:00", "title": "Morning walk", "tag": "health"},
			{"id": "local-2", "start": "09:00", "end": "17:00", "title": "Work"},
		},
		"completion": map[string]any{
			"2026-03-02": map[string]bool{"local-1": true},
		},
		"supplementsList": []map[string]any{
			{"id": "local-s1", "item": "Creatine", "dose": "5g", "timeAt": "08:00"},
		},
		"log": []map[string]any{
			{"date": "2026-03-02", "bw": "82", "sleep": "7"},
		},
	})
	if resp.Status != http.StatusOK {
		t.Fatalf("import: status %d (%s)", resp.Status, resp.Error)
	}
	var result db.ImportResult
	resp.decode(t, &result)
	if result.Imported.ScheduleBlocks != 2 || result.Imported.Supplements != 1 || result.Imported.DailyLogs != 1 {
		t.Errorf("imported counts = %+v", result.Imported)
	}
	newID, ok := result.IdMappings["local-1"]
	if !ok || newID == "local-1" {
		t.Fatalf("idMappings = %v, want fresh id for local-1", result.IdMappings)
	}

	export := ts.request(t, "GET", "/api/sync/export", user.AccessToken, nil)
	if export.Status != http.StatusOK {
		t.Fatalf("export: status %d", export.Status)
	}
	var doc db.StateDocument
	export.decode(t, &doc)
	if len(doc.Schedule) != 2 || doc.Schedule[0].Title != "Morning walk" {
		t.Errorf("exported schedule = %+v", doc.Schedule)
	}
	if !doc.Completion["2026-03-02"][newID] {
		t.Errorf("completion not remapped in export: %v", doc.Completion)
	}
	// Legacy map fields are always present for document compatibility.
	if doc.Top3 == nil || doc.Mechanism == nil || doc.Supp == nil {
		t.Error("export omitted legacy map fields")
	}
}

func TestFullState(t *testing.T) {
	ts := newTestServer(t)
	user := ts.registerUser(t, "fullstate@example.com")

	ts.request(t, "POST", "/api/schedule", user.AccessToken, map[string]any{
		"start": "06:00", "end": "07:00", "title": "Walk",
	})
	ts.request(t, "POST", "/api/supplements", user.AccessToken, map[string]any{
		"item": "Creatine", "dose": "5g", "timeAt": "08:00",
	})

	resp := ts.request(t, "GET", "/api/sync/full-state?date=2026-03-02", user.AccessToken, nil)
	if resp.Status != http.StatusOK {
		t.Fatalf("full-state: status %d (%s)", resp.Status, resp.Error)
	}
	var state db.FullState
	resp.decode(t, &state)
	if state.User == nil || state.User.Email != "fullstate@example.com" {
		t.Errorf("full state user = %+v", state.User)
	}
	if state.Preferences == nil {
		t.Error("full state missing preferences")
	}
	if len(state.Schedule) != 1 || len(state.Supplements) != 1 {
		t.Errorf("full state schedule/supplements = %d/%d", len(state.Schedule), len(state.Supplements))
	}
}
