package db

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func createTestUser(t *testing.T, database *DB, email string) *User {
	t.Helper()
	user, err := database.CreateUser(CreateUserInput{
		Email:        email,
		PasswordHash: "not-a-real-hash",
	})
	if err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := newTestDB(t)
	createTestUser(t, database, "dup@example.com")

	_, err := database.CreateUser(CreateUserInput{
		Email:        "dup@example.com",
		PasswordHash: "x",
	})
	if err == nil {
		t.Fatal("expected UNIQUE violation for duplicate email")
	}
}

func TestCreateUserGetsDefaultPreferences(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "prefs@example.com")

	prefs, err := database.GetPreferences(user.ID)
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if prefs.CaffeineCutoff != "14:00" {
		t.Errorf("expected default caffeine cutoff 14:00, got %q", prefs.CaffeineCutoff)
	}
	if prefs.SelectedProgramID != nil {
		t.Errorf("expected no selected program, got %v", *prefs.SelectedProgramID)
	}
}
