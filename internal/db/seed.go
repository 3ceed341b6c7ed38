package db

import "fmt"

// SeedSummary reports how many reference rows each catalog gained. A zero
// count means the catalog already had rows and was left untouched.
type SeedSummary struct {
	Foods          int
	SupplementRefs int
	GymPrograms    int
}

// Seed populates the shared catalogs: the food database, the supplement
// reference list, and the system gym programs. Each catalog is guarded by a
// count check so repeat runs are no-ops, and each loads in its own
// transaction.
func (db *DB) Seed() (*SeedSummary, error) {
	summary := &SeedSummary{}

	n, err := db.seedFoods()
	if err != nil {
		return nil, fmt.Errorf("seeding foods: %w", err)
	}
	summary.Foods = n

	n, err = db.seedSupplementRefs()
	if err != nil {
		return nil, fmt.Errorf("seeding supplement database: %w", err)
	}
	summary.SupplementRefs = n

	n, err = db.seedPrograms()
	if err != nil {
		return nil, fmt.Errorf("seeding gym programs: %w", err)
	}
	summary.GymPrograms = n

	return summary, nil
}

func (db *DB) tableCount(table string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n)
	return n, err
}

func (db *DB) seedFoods() (int, error) {
	if n, err := db.tableCount("foods"); err != nil || n > 0 {
		return 0, err
	}
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, f := range seedFoods {
		_, err := tx.Exec(`
			INSERT INTO foods (id, name, brand, calories_per_100g, protein_per_100g, carbs_per_100g,
			                   fat_per_100g, fiber_per_100g, sugar_per_100g, sodium_mg_per_100g, is_verified)
			VALUES (?, ?, '', ?, ?, ?, ?, ?, ?, ?, 1)`,
			NewID(), f.name, f.cal, f.protein, f.carbs, f.fat, f.fiber, f.sugar, f.sodium)
		if err != nil {
			return 0, fmt.Errorf("food %q: %w", f.name, err)
		}
	}
	return len(seedFoods), tx.Commit()
}

func (db *DB) seedSupplementRefs() (int, error) {
	if n, err := db.tableCount("supplement_database"); err != nil || n > 0 {
		return 0, err
	}
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range seedSupplementRefs {
		_, err := tx.Exec(`
			INSERT INTO supplement_database (id, name, category, typical_dose, timing_recommendation, benefits, precautions)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			NewID(), s.name, s.category, s.dose, s.timing, s.benefits, s.precautions)
		if err != nil {
			return 0, fmt.Errorf("supplement %q: %w", s.name, err)
		}
	}
	return len(seedSupplementRefs), tx.Commit()
}

func (db *DB) seedPrograms() (int, error) {
	if n, err := db.tableCount("gym_programs"); err != nil || n > 0 {
		return 0, err
	}
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range seedPrograms {
		programID := NewID()
		_, err := tx.Exec(`
			INSERT INTO gym_programs (id, user_id, name, description, goal, is_system)
			VALUES (?, NULL, ?, ?, ?, 1)`,
			programID, p.name, p.description, p.goal)
		if err != nil {
			return 0, fmt.Errorf("program %q: %w", p.name, err)
		}
		for dayIdx, d := range p.days {
			dayID := NewID()
			_, err := tx.Exec(`
				INSERT INTO program_days (id, program_id, name, day_order)
				VALUES (?, ?, ?, ?)`, dayID, programID, d.name, dayIdx+1)
			if err != nil {
				return 0, fmt.Errorf("program day %q: %w", d.name, err)
			}
			for exIdx, ex := range d.exercises {
				_, err := tx.Exec(`
					INSERT INTO program_exercises (id, day_id, exercise_name, sets, reps, rir, rest_seconds, notes, progression, sort_order)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					NewID(), dayID, ex.name, ex.sets, ex.reps, ex.rir, ex.rest, ex.notes, ex.progression, exIdx+1)
				if err != nil {
					return 0, fmt.Errorf("exercise %q: %w", ex.name, err)
				}
			}
		}
	}
	return len(seedPrograms), tx.Commit()
}
