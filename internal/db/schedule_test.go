package db

import (
	"database/sql"
	"errors"
	"testing"
)

func TestScheduleBlockCRUD(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "sched@example.com")

	block, err := database.CreateScheduleBlock(user.ID, ScheduleBlockInput{
		Start: "06:30", End: "07:15", Title: "Mobility", Purpose: "Loosen up",
	})
	if err != nil {
		t.Fatalf("CreateScheduleBlock: %v", err)
	}
	if block.Source != "schedule" {
		t.Errorf("expected default source 'schedule', got %q", block.Source)
	}

	newTitle := "Mobility + stretching"
	updated, err := database.UpdateScheduleBlock(user.ID, block.ID, ScheduleBlockPatch{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateScheduleBlock: %v", err)
	}
	if updated.Title != newTitle || updated.Start != "06:30" {
		t.Errorf("patch applied wrong: %+v", updated)
	}

	if err := database.DeleteScheduleBlock(user.ID, block.ID); err != nil {
		t.Fatalf("DeleteScheduleBlock: %v", err)
	}
	if _, err := database.GetScheduleBlock(user.ID, block.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected ErrNoRows after delete, got %v", err)
	}
}

func TestScheduleBlockOwnership(t *testing.T) {
	database := newTestDB(t)
	alice := createTestUser(t, database, "alice-sched@example.com")
	bob := createTestUser(t, database, "bob-sched@example.com")

	block, err := database.CreateScheduleBlock(alice.ID, ScheduleBlockInput{
		Start: "06:00", End: "07:00", Title: "Alice only",
	})
	if err != nil {
		t.Fatalf("CreateScheduleBlock: %v", err)
	}

	if _, err := database.GetScheduleBlock(bob.ID, block.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("bob reading alice's block: expected ErrNoRows, got %v", err)
	}
	title := "hijacked"
	if _, err := database.UpdateScheduleBlock(bob.ID, block.ID, ScheduleBlockPatch{Title: &title}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("bob updating alice's block: expected ErrNoRows, got %v", err)
	}
	if err := database.DeleteScheduleBlock(bob.ID, block.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("bob deleting alice's block: expected ErrNoRows, got %v", err)
	}

	got, err := database.GetScheduleBlock(alice.ID, block.ID)
	if err != nil || got.Title != "Alice only" {
		t.Fatalf("alice's block damaged: %+v, %v", got, err)
	}
}

func TestToggleCompletionIdempotent(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "toggle@example.com")
	block, err := database.CreateScheduleBlock(user.ID, ScheduleBlockInput{
		Start: "06:00", End: "07:00", Title: "Walk",
	})
	if err != nil {
		t.Fatalf("CreateScheduleBlock: %v", err)
	}

	first, err := database.ToggleCompletion(user.ID, block.ID, "2026-03-02", true)
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if !first.IsComplete || first.CompletedAt == nil {
		t.Errorf("expected completed row with timestamp, got %+v", first)
	}

	second, err := database.ToggleCompletion(user.ID, block.ID, "2026-03-02", true)
	if err != nil {
		t.Fatalf("repeat toggle: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("repeat toggle created a new row: %s vs %s", second.ID, first.ID)
	}

	completions, _ := database.ListCompletions(user.ID, "2026-03-02")
	if len(completions) != 1 {
		t.Fatalf("expected single completion row, got %d", len(completions))
	}

	off, err := database.ToggleCompletion(user.ID, block.ID, "2026-03-02", false)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off.IsComplete || off.CompletedAt != nil {
		t.Errorf("expected cleared completion, got %+v", off)
	}
}

func TestDeleteBlockCascadesCompletions(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "cascade@example.com")
	block, err := database.CreateScheduleBlock(user.ID, ScheduleBlockInput{
		Start: "06:00", End: "07:00", Title: "Walk",
	})
	if err != nil {
		t.Fatalf("CreateScheduleBlock: %v", err)
	}
	if _, err := database.ToggleCompletion(user.ID, block.ID, "2026-03-02", true); err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}

	if err := database.DeleteScheduleBlock(user.ID, block.ID); err != nil {
		t.Fatalf("DeleteScheduleBlock: %v", err)
	}
	completions, err := database.ListCompletions(user.ID, "2026-03-02")
	if err != nil {
		t.Fatalf("ListCompletions: %v", err)
	}
	if len(completions) != 0 {
		t.Errorf("expected completions removed with their block, got %d", len(completions))
	}
}
