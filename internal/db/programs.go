package db

type GymProgram struct {
	ID          string        `json:"id"`
	UserID      *string       `json:"userId,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Goal        string        `json:"goal"`
	IsSystem    bool          `json:"isSystem"`
	Days        []*ProgramDay `json:"days,omitempty"`
}

type ProgramDay struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	DayOrder  int                `json:"dayOrder"`
	Exercises []*ProgramExercise `json:"exercises,omitempty"`
}

type ProgramExercise struct {
	ID           string `json:"id"`
	ExerciseName string `json:"exerciseName"`
	Sets         string `json:"sets"`
	Reps         string `json:"reps"`
	RIR          string `json:"rir"`
	RestSeconds  string `json:"restSeconds"`
	Notes        string `json:"notes"`
	Progression  string `json:"progression"`
	SortOrder    int    `json:"sortOrder"`
}

// ListGymPrograms returns system programs plus the user's own, with day
// summaries but without exercises.
func (db *DB) ListGymPrograms(userID string) ([]*GymProgram, error) {
	rows, err := db.Query(`
		SELECT id, user_id, name, description, goal, is_system
		FROM gym_programs
		WHERE is_system = 1 OR user_id = ?
		ORDER BY is_system DESC, name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []*GymProgram{}
	for rows.Next() {
		p := &GymProgram{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Goal, &p.IsSystem); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range programs {
		days, err := db.programDays(p.ID, false)
		if err != nil {
			return nil, err
		}
		p.Days = days
	}
	return programs, nil
}

// GetGymProgram returns the full hierarchy of a program visible to the user,
// or sql.ErrNoRows when it is neither system-owned nor theirs.
func (db *DB) GetGymProgram(userID, programID string) (*GymProgram, error) {
	p := &GymProgram{}
	err := db.QueryRow(`
		SELECT id, user_id, name, description, goal, is_system
		FROM gym_programs
		WHERE id = ? AND (is_system = 1 OR user_id = ?)`, programID, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Goal, &p.IsSystem)
	if err != nil {
		return nil, err
	}
	if p.Days, err = db.programDays(p.ID, true); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProgramDay returns one day with exercises, checking the parent program's
// visibility for the user.
func (db *DB) GetProgramDay(userID, dayID string) (*ProgramDay, error) {
	d := &ProgramDay{}
	err := db.QueryRow(`
		SELECT d.id, d.name, d.day_order
		FROM program_days d JOIN gym_programs p ON p.id = d.program_id
		WHERE d.id = ? AND (p.is_system = 1 OR p.user_id = ?)`, dayID, userID).Scan(
		&d.ID, &d.Name, &d.DayOrder)
	if err != nil {
		return nil, err
	}
	if d.Exercises, err = db.programExercises(d.ID); err != nil {
		return nil, err
	}
	return d, nil
}

func (db *DB) programDays(programID string, withExercises bool) ([]*ProgramDay, error) {
	rows, err := db.Query(`SELECT id, name, day_order FROM program_days
		WHERE program_id = ? ORDER BY day_order ASC`, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []*ProgramDay{}
	for rows.Next() {
		d := &ProgramDay{}
		if err := rows.Scan(&d.ID, &d.Name, &d.DayOrder); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if withExercises {
		for _, d := range days {
			if d.Exercises, err = db.programExercises(d.ID); err != nil {
				return nil, err
			}
		}
	}
	return days, nil
}

func (db *DB) programExercises(dayID string) ([]*ProgramExercise, error) {
	rows, err := db.Query(`
		SELECT id, exercise_name, sets, reps, rir, rest_seconds, notes, progression, sort_order
		FROM program_exercises WHERE day_id = ? ORDER BY sort_order ASC`, dayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []*ProgramExercise{}
	for rows.Next() {
		e := &ProgramExercise{}
		if err := rows.Scan(&e.ID, &e.ExerciseName, &e.Sets, &e.Reps, &e.RIR,
			&e.RestSeconds, &e.Notes, &e.Progression, &e.SortOrder); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
