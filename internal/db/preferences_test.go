package db

import "testing"

func TestUpdatePreferencesPartialPatch(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "prefs@example.com")

	prefs, err := database.UpdatePreferences(user.ID, PreferencesPatch{
		SleepTarget: strp("8h"),
	})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if prefs.SleepTarget != "8h" {
		t.Errorf("sleep target = %q", prefs.SleepTarget)
	}
	// Untouched fields keep their defaults.
	if prefs.CaffeineCutoff != "14:00" {
		t.Errorf("caffeine cutoff = %q, want default 14:00", prefs.CaffeineCutoff)
	}
}

func TestUpdatePreferencesProgramSelection(t *testing.T) {
	database := newTestDB(t)
	if _, err := database.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	user := createTestUser(t, database, "prefs-program@example.com")

	programs, err := database.ListGymPrograms(user.ID)
	if err != nil {
		t.Fatalf("ListGymPrograms: %v", err)
	}
	program := programs[0]
	day := program.Days[0]

	prefs, err := database.UpdatePreferences(user.ID, PreferencesPatch{
		SelectedProgramID:    &program.ID,
		SelectedProgramDayID: &day.ID,
	})
	if err != nil {
		t.Fatalf("selecting program: %v", err)
	}
	if prefs.SelectedProgramID == nil || *prefs.SelectedProgramID != program.ID {
		t.Errorf("selected program = %v", prefs.SelectedProgramID)
	}

	// An absent field leaves the selection alone.
	prefs, err = database.UpdatePreferences(user.ID, PreferencesPatch{
		Timezone: strp("Europe/Berlin"),
	})
	if err != nil {
		t.Fatalf("unrelated patch: %v", err)
	}
	if prefs.SelectedProgramID == nil {
		t.Error("unrelated patch cleared the program selection")
	}

	// The clear flags drop it.
	prefs, err = database.UpdatePreferences(user.ID, PreferencesPatch{
		ClearProgram:    true,
		ClearProgramDay: true,
	})
	if err != nil {
		t.Fatalf("clearing selection: %v", err)
	}
	if prefs.SelectedProgramID != nil || prefs.SelectedProgramDayID != nil {
		t.Errorf("selection not cleared: %v / %v", prefs.SelectedProgramID, prefs.SelectedProgramDayID)
	}
}
