package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestUpsertDailyLogByDate(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "dailylog@example.com")

	first, err := database.UpsertDailyLog(user.ID, DailyLogInput{
		Date: "2026-03-02", BW: "82", Sleep: "7",
	})
	if err != nil {
		t.Fatalf("UpsertDailyLog: %v", err)
	}

	second, err := database.UpsertDailyLog(user.ID, DailyLogInput{
		Date: "2026-03-02", BW: "81.5", Sleep: "7", Notes: "cut day",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a second row for the same date")
	}
	if second.BW != "81.5" || second.Notes != "cut day" {
		t.Errorf("upsert did not overwrite fields: %+v", second)
	}

	logs, err := database.ListDailyLogs(user.ID, "", "", 0)
	if err != nil {
		t.Fatalf("ListDailyLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
}

func TestListDailyLogsRangeAndLimit(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "logrange@example.com")

	for _, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04"} {
		if _, err := database.UpsertDailyLog(user.ID, DailyLogInput{Date: date}); err != nil {
			t.Fatalf("UpsertDailyLog %s: %v", date, err)
		}
	}

	logs, err := database.ListDailyLogs(user.ID, "2026-03-02", "2026-03-03", 0)
	if err != nil {
		t.Fatalf("ListDailyLogs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs in range, got %d", len(logs))
	}
	if logs[0].Date != "2026-03-03" {
		t.Errorf("expected newest first, got %s", logs[0].Date)
	}

	limited, err := database.ListDailyLogs(user.ID, "", "", 3)
	if err != nil {
		t.Fatalf("ListDailyLogs limited: %v", err)
	}
	if len(limited) != 3 {
		t.Fatalf("expected 3 logs with limit, got %d", len(limited))
	}
}

func TestDeleteDailyLogOwnership(t *testing.T) {
	database := newTestDB(t)
	alice := createTestUser(t, database, "alice-log@example.com")
	bob := createTestUser(t, database, "bob-log@example.com")

	log, err := database.UpsertDailyLog(alice.ID, DailyLogInput{Date: "2026-03-02"})
	if err != nil {
		t.Fatalf("UpsertDailyLog: %v", err)
	}

	if err := database.DeleteDailyLog(bob.ID, log.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("bob deleting alice's log: expected ErrNoRows, got %v", err)
	}
	if err := database.DeleteDailyLog(alice.ID, log.ID); err != nil {
		t.Errorf("alice deleting her log: %v", err)
	}
}

func TestDailyLogStats(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "stats@example.com")

	now := time.Now()
	entries := []struct {
		daysAgo int
		bw      string
		sleep   string
		steps   string
	}{
		{3, "84", "6.5", "8000"},
		{2, "83", "7.5", "12000"},
		{1, "82", "", "10000"},
		{0, "not a number", "8", ""},
	}
	for _, e := range entries {
		date := now.AddDate(0, 0, -e.daysAgo).Format("2006-01-02")
		if _, err := database.UpsertDailyLog(user.ID, DailyLogInput{
			Date: date, BW: e.bw, Sleep: e.sleep, Steps: e.steps,
		}); err != nil {
			t.Fatalf("UpsertDailyLog: %v", err)
		}
	}

	stats, err := database.GetDailyLogStats(user.ID, 7)
	if err != nil {
		t.Fatalf("GetDailyLogStats: %v", err)
	}
	if stats.TotalEntries != 4 {
		t.Errorf("expected 4 entries, got %d", stats.TotalEntries)
	}
	// The unparsable bodyweight is skipped, so "current" is the newest
	// parsable value.
	if stats.Weight.Current == nil || *stats.Weight.Current != 82 {
		t.Errorf("weight current = %v, want 82", stats.Weight.Current)
	}
	if stats.Weight.Min == nil || *stats.Weight.Min != 82 || *stats.Weight.Max != 84 {
		t.Errorf("weight min/max = %v/%v, want 82/84", stats.Weight.Min, stats.Weight.Max)
	}
	if stats.Weight.Average == nil || *stats.Weight.Average != 83 {
		t.Errorf("weight average = %v, want 83", stats.Weight.Average)
	}
	if stats.Sleep.Average == nil {
		t.Fatal("expected sleep average")
	}
	if avg := *stats.Sleep.Average; avg < 7.33 || avg > 7.34 {
		t.Errorf("sleep average = %v, want ~7.333", avg)
	}
	if stats.Steps.Total != 30000 || stats.Steps.Average == nil || *stats.Steps.Average != 10000 {
		t.Errorf("steps = total %d avg %v, want 30000/10000", stats.Steps.Total, stats.Steps.Average)
	}
}
