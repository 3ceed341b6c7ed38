package db

import (
	"fmt"
	"time"
)

// StateDocument is the transferable form of a user's entire mutable state,
// produced by export and accepted by import. Entity ids inside it are only
// remap keys: import never persists them. The top3/mechanism/supp maps are
// legacy client fields carried for document compatibility.
type StateDocument struct {
	Completion         map[string]map[string]bool `json:"completion"`
	Top3               map[string]string          `json:"top3"`
	Mechanism          map[string]string          `json:"mechanism"`
	Schedule           []StateScheduleBlock       `json:"schedule"`
	Supp               map[string]bool            `json:"supp"`
	SuppLog            map[string]map[string]bool `json:"suppLog"`
	MealTemplatesByDay map[string][]StateMealTemplate `json:"mealTemplatesByDay"`
	MealLog            map[string]map[string]bool `json:"mealLog"`
	SupplementsList    []StateSupplement          `json:"supplementsList"`
	Log                []StateLogEntry            `json:"log"`
}

type StateScheduleBlock struct {
	ID       string `json:"id,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Title    string `json:"title"`
	Purpose  string `json:"purpose"`
	Good     string `json:"good"`
	Tag      string `json:"tag"`
	Readonly bool   `json:"readonly,omitempty"`
	Source   string `json:"source,omitempty"`
}

type StateSupplement struct {
	ID     string `json:"id,omitempty"`
	Item   string `json:"item"`
	Goal   string `json:"goal"`
	Dose   string `json:"dose"`
	Tier   string `json:"tier,omitempty"`
	Rule   string `json:"rule,omitempty"`
	TimeAt string `json:"timeAt"`
}

type StateMealTemplate struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Examples string    `json:"examples"`
	Grams    *float64  `json:"grams,omitempty"`
	FoodID   *string   `json:"foodId,omitempty"`
	Tags     []MealTag `json:"tags"`
}

type StateLogEntry struct {
	ID    string `json:"id,omitempty"`
	Date  string `json:"date"`
	Day   string `json:"day"`
	BW    string `json:"bw"`
	Sleep string `json:"sleep"`
	Steps string `json:"steps"`
	Top   string `json:"top"`
	Notes string `json:"notes"`
}

// ImportResult summarizes a completed import. IdMappings lets the client
// reconcile optimistic local ids against the server-assigned ones.
type ImportResult struct {
	Imported   ImportCounts      `json:"imported"`
	IdMappings map[string]string `json:"idMappings"`
}

type ImportCounts struct {
	ScheduleBlocks int `json:"scheduleBlocks"`
	Supplements    int `json:"supplements"`
	MealTemplates  int `json:"mealTemplates"`
	DailyLogs      int `json:"dailyLogs"`
}

// ImportState replaces the user's entire mutable dataset with the document's
// contents inside one transaction: any failure rolls back to the prior state.
// Log maps referencing entities absent from the document are skipped
// silently, and only truthy entries are replayed.
func (db *DB) ImportState(userID string, doc *StateDocument) (*ImportResult, error) {
	idMappings := make(map[string]string)

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	// Logs first so the parent deletes never trip FK checks mid-sequence.
	for _, stmt := range []string{
		`DELETE FROM completions WHERE user_id = ?`,
		`DELETE FROM supplement_logs WHERE user_id = ?`,
		`DELETE FROM meal_logs WHERE user_id = ?`,
		`DELETE FROM schedule_blocks WHERE user_id = ?`,
		`DELETE FROM supplements WHERE user_id = ?`,
		`DELETE FROM meal_template_tags WHERE meal_template_id IN
			(SELECT id FROM meal_templates WHERE user_id = ?)`,
		`DELETE FROM meal_templates WHERE user_id = ?`,
		`DELETE FROM daily_logs WHERE user_id = ?`,
	} {
		if _, err := tx.Exec(stmt, userID); err != nil {
			return nil, fmt.Errorf("clearing state: %w", err)
		}
	}

	now := time.Now().UTC()

	for i, block := range doc.Schedule {
		id := NewID()
		source := block.Source
		if source == "" {
			source = "schedule"
		}
		_, err := tx.Exec(`
			INSERT INTO schedule_blocks (id, user_id, start_time, end_time, title, purpose, good, tag, readonly, source, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, userID, block.Start, block.End, block.Title, block.Purpose,
			block.Good, block.Tag, block.Readonly, source, i)
		if err != nil {
			return nil, fmt.Errorf("importing schedule block: %w", err)
		}
		if block.ID != "" {
			idMappings[block.ID] = id
		}
	}

	for date, blocks := range doc.Completion {
		for oldID, isComplete := range blocks {
			newID, ok := idMappings[oldID]
			if !ok || !isComplete {
				continue
			}
			_, err := tx.Exec(`
				INSERT INTO completions (id, user_id, block_id, date, is_complete, completed_at)
				VALUES (?, ?, ?, ?, 1, ?)`, NewID(), userID, newID, date, now)
			if err != nil {
				return nil, fmt.Errorf("importing completion: %w", err)
			}
		}
	}

	for i, supp := range doc.SupplementsList {
		id := NewID()
		timeAt := supp.TimeAt
		if timeAt == "" {
			timeAt = "08:00"
		}
		_, err := tx.Exec(`
			INSERT INTO supplements (id, user_id, item, goal, dose, tier, rule, time_at, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, userID, supp.Item, supp.Goal, supp.Dose, supp.Tier, supp.Rule, timeAt, i)
		if err != nil {
			return nil, fmt.Errorf("importing supplement: %w", err)
		}
		if supp.ID != "" {
			idMappings[supp.ID] = id
		}
	}

	for date, supplements := range doc.SuppLog {
		for oldID, isTaken := range supplements {
			newID, ok := idMappings[oldID]
			if !ok || !isTaken {
				continue
			}
			_, err := tx.Exec(`
				INSERT INTO supplement_logs (id, user_id, supplement_id, date, is_taken, taken_at)
				VALUES (?, ?, ?, ?, 1, ?)`, NewID(), userID, newID, date, now)
			if err != nil {
				return nil, fmt.Errorf("importing supplement log: %w", err)
			}
		}
	}

	mealCount := 0
	for dayOfWeek, meals := range doc.MealTemplatesByDay {
		for i, meal := range meals {
			id := NewID()
			_, err := tx.Exec(`
				INSERT INTO meal_templates (id, user_id, day_of_week, name, examples, grams, food_id, sort_order)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				id, userID, dayOfWeek, meal.Name, meal.Examples, meal.Grams, meal.FoodID, i)
			if err != nil {
				return nil, fmt.Errorf("importing meal template: %w", err)
			}
			if err := insertMealTags(tx, id, meal.Tags); err != nil {
				return nil, err
			}
			if meal.ID != "" {
				idMappings[meal.ID] = id
			}
			mealCount++
		}
	}

	for date, meals := range doc.MealLog {
		for oldID, isEaten := range meals {
			newID, ok := idMappings[oldID]
			if !ok || !isEaten {
				continue
			}
			_, err := tx.Exec(`
				INSERT INTO meal_logs (id, user_id, meal_template_id, date, is_eaten, eaten_at)
				VALUES (?, ?, ?, ?, 1, ?)`, NewID(), userID, newID, date, now)
			if err != nil {
				return nil, fmt.Errorf("importing meal log: %w", err)
			}
		}
	}

	for _, entry := range doc.Log {
		_, err := tx.Exec(`
			INSERT INTO daily_logs (id, user_id, date, day, bw, sleep, steps, top, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id, date)
			DO UPDATE SET day = excluded.day, bw = excluded.bw, sleep = excluded.sleep,
			              steps = excluded.steps, top = excluded.top, notes = excluded.notes`,
			NewID(), userID, entry.Date, entry.Day, entry.BW, entry.Sleep,
			entry.Steps, entry.Top, entry.Notes)
		if err != nil {
			return nil, fmt.Errorf("importing daily log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &ImportResult{
		Imported: ImportCounts{
			ScheduleBlocks: len(doc.Schedule),
			Supplements:    len(doc.SupplementsList),
			MealTemplates:  mealCount,
			DailyLogs:      len(doc.Log),
		},
		IdMappings: idMappings,
	}, nil
}

// ExportState flattens the user's entire mutable state into one document.
// Read-only; an empty dataset yields a document of empty collections.
func (db *DB) ExportState(userID string) (*StateDocument, error) {
	doc := &StateDocument{
		Completion:         map[string]map[string]bool{},
		Top3:               map[string]string{},
		Mechanism:          map[string]string{},
		Schedule:           []StateScheduleBlock{},
		Supp:               map[string]bool{},
		SuppLog:            map[string]map[string]bool{},
		MealTemplatesByDay: map[string][]StateMealTemplate{},
		MealLog:            map[string]map[string]bool{},
		SupplementsList:    []StateSupplement{},
		Log:                []StateLogEntry{},
	}

	blocks, err := db.ListScheduleBlocks(userID)
	if err != nil {
		return nil, fmt.Errorf("exporting schedule: %w", err)
	}
	for _, b := range blocks {
		doc.Schedule = append(doc.Schedule, StateScheduleBlock{
			ID: b.ID, Start: b.Start, End: b.End, Title: b.Title,
			Purpose: b.Purpose, Good: b.Good, Tag: b.Tag,
			Readonly: b.Readonly, Source: b.Source,
		})
	}

	supplements, err := db.ListSupplements(userID)
	if err != nil {
		return nil, fmt.Errorf("exporting supplements: %w", err)
	}
	for _, s := range supplements {
		doc.SupplementsList = append(doc.SupplementsList, StateSupplement{
			ID: s.ID, Item: s.Item, Goal: s.Goal, Dose: s.Dose,
			Tier: s.Tier, Rule: s.Rule, TimeAt: s.TimeAt,
		})
	}

	templates, err := db.ListMealTemplates(userID, "")
	if err != nil {
		return nil, fmt.Errorf("exporting meal templates: %w", err)
	}
	for _, m := range templates {
		doc.MealTemplatesByDay[m.DayOfWeek] = append(doc.MealTemplatesByDay[m.DayOfWeek], StateMealTemplate{
			ID: m.ID, Name: m.Name, Examples: m.Examples,
			Grams: m.Grams, FoodID: m.FoodID, Tags: m.Tags,
		})
	}

	logs, err := db.ListDailyLogs(userID, "", "", 0)
	if err != nil {
		return nil, fmt.Errorf("exporting daily logs: %w", err)
	}
	for _, l := range logs {
		doc.Log = append(doc.Log, StateLogEntry{
			ID: l.ID, Date: l.Date, Day: l.Day, BW: l.BW,
			Sleep: l.Sleep, Steps: l.Steps, Top: l.Top, Notes: l.Notes,
		})
	}

	// Export keeps both true and false log rows as observed; import later
	// replays only the true ones.
	if err := db.collectLogMap(doc.Completion,
		`SELECT date, block_id, is_complete FROM completions WHERE user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("exporting completions: %w", err)
	}
	if err := db.collectLogMap(doc.SuppLog,
		`SELECT date, supplement_id, is_taken FROM supplement_logs WHERE user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("exporting supplement logs: %w", err)
	}
	if err := db.collectLogMap(doc.MealLog,
		`SELECT date, meal_template_id, is_eaten FROM meal_logs WHERE user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("exporting meal logs: %w", err)
	}

	return doc, nil
}

func (db *DB) collectLogMap(dst map[string]map[string]bool, query, userID string) error {
	rows, err := db.Query(query, userID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var date, parentID string
		var value bool
		if err := rows.Scan(&date, &parentID, &value); err != nil {
			return err
		}
		if dst[date] == nil {
			dst[date] = map[string]bool{}
		}
		dst[date][parentID] = value
	}
	return rows.Err()
}

// FullState is the composite dashboard read: every template list, the newest
// 100 daily logs, and only today's log rows. Distinct from export, which
// carries the full date-keyed history for backup fidelity.
type FullState struct {
	User        *User            `json:"user"`
	Preferences *UserPreferences `json:"preferences"`
	Schedule    []*ScheduleBlock `json:"scheduleBlocks"`
	Supplements []*Supplement    `json:"supplements"`
	Meals       []*MealTemplate  `json:"mealTemplates"`
	DailyLogs   []*DailyLog      `json:"dailyLogs"`
	Today       TodayState       `json:"today"`
}

type TodayState struct {
	Completions    []*Completion    `json:"completions"`
	SupplementLogs []*SupplementLog `json:"supplementLogs"`
	MealLogs       []*MealLog       `json:"mealLogs"`
}

func (db *DB) GetFullState(userID, today string) (*FullState, error) {
	user, err := db.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	prefs, err := db.GetPreferences(userID)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}

	state := &FullState{User: user, Preferences: prefs}
	if state.Schedule, err = db.ListScheduleBlocks(userID); err != nil {
		return nil, err
	}
	if state.Supplements, err = db.ListSupplements(userID); err != nil {
		return nil, err
	}
	if state.Meals, err = db.ListMealTemplates(userID, ""); err != nil {
		return nil, err
	}
	if state.DailyLogs, err = db.ListDailyLogs(userID, "", "", 100); err != nil {
		return nil, err
	}
	if state.Today.Completions, err = db.ListCompletions(userID, today); err != nil {
		return nil, err
	}
	if state.Today.SupplementLogs, err = db.ListSupplementLogs(userID, today, today); err != nil {
		return nil, err
	}
	if state.Today.MealLogs, err = db.ListMealLogs(userID, today); err != nil {
		return nil, err
	}
	return state, nil
}
