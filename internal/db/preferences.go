package db

import (
	"database/sql"
	"fmt"
)

type UserPreferences struct {
	Timezone             string  `json:"timezone"`
	CaffeineCutoff       string  `json:"caffeineCutoff"`
	SleepTarget          string  `json:"sleepTarget"`
	ProteinTarget        string  `json:"proteinTarget"`
	HydrationTarget      string  `json:"hydrationTarget"`
	SelectedProgramID    *string `json:"selectedProgramId"`
	SelectedProgramDayID *string `json:"selectedProgramDayId"`
}

type PreferencesPatch struct {
	Timezone             *string `json:"timezone"`
	CaffeineCutoff       *string `json:"caffeineCutoff"`
	SleepTarget          *string `json:"sleepTarget"`
	ProteinTarget        *string `json:"proteinTarget"`
	HydrationTarget      *string `json:"hydrationTarget"`
	SelectedProgramID    *string `json:"selectedProgramId"`
	SelectedProgramDayID *string `json:"selectedProgramDayId"`

	// Distinguishes "clear the selection" from "field absent". Set by the
	// handler when the JSON carried an explicit null.
	ClearProgram    bool `json:"-"`
	ClearProgramDay bool `json:"-"`
}

func (db *DB) GetPreferences(userID string) (*UserPreferences, error) {
	p := &UserPreferences{}
	err := db.QueryRow(`
		SELECT timezone, caffeine_cutoff, sleep_target, protein_target, hydration_target,
		       selected_program_id, selected_program_day_id
		FROM user_preferences WHERE user_id = ?`, userID).Scan(
		&p.Timezone, &p.CaffeineCutoff, &p.SleepTarget, &p.ProteinTarget,
		&p.HydrationTarget, &p.SelectedProgramID, &p.SelectedProgramDayID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (db *DB) UpdatePreferences(userID string, patch PreferencesPatch) (*UserPreferences, error) {
	current, err := db.GetPreferences(userID)
	if err != nil {
		return nil, err
	}
	applyString(&current.Timezone, patch.Timezone)
	applyString(&current.CaffeineCutoff, patch.CaffeineCutoff)
	applyString(&current.SleepTarget, patch.SleepTarget)
	applyString(&current.ProteinTarget, patch.ProteinTarget)
	applyString(&current.HydrationTarget, patch.HydrationTarget)
	if patch.SelectedProgramID != nil {
		current.SelectedProgramID = patch.SelectedProgramID
	} else if patch.ClearProgram {
		current.SelectedProgramID = nil
	}
	if patch.SelectedProgramDayID != nil {
		current.SelectedProgramDayID = patch.SelectedProgramDayID
	} else if patch.ClearProgramDay {
		current.SelectedProgramDayID = nil
	}

	res, err := db.Exec(`
		UPDATE user_preferences
		SET timezone = ?, caffeine_cutoff = ?, sleep_target = ?, protein_target = ?,
		    hydration_target = ?, selected_program_id = ?, selected_program_day_id = ?,
		    updated_at = datetime('now')
		WHERE user_id = ?`,
		current.Timezone, current.CaffeineCutoff, current.SleepTarget,
		current.ProteinTarget, current.HydrationTarget,
		current.SelectedProgramID, current.SelectedProgramDayID, userID)
	if err != nil {
		return nil, fmt.Errorf("updating preferences: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}
	return current, nil
}
