package db

import (
	"database/sql"
	"fmt"
	"time"
)

type Supplement struct {
	ID        string `json:"id"`
	Item      string `json:"item"`
	Goal      string `json:"goal"`
	Dose      string `json:"dose"`
	Tier      string `json:"tier"`
	Rule      string `json:"rule"`
	TimeAt    string `json:"timeAt"`
	SortOrder int    `json:"sortOrder"`
}

type SupplementInput struct {
	Item      string
	Goal      string
	Dose      string
	Tier      string
	Rule      string
	TimeAt    string
	SortOrder int
}

type SupplementPatch struct {
	Item      *string `json:"item"`
	Goal      *string `json:"goal"`
	Dose      *string `json:"dose"`
	Tier      *string `json:"tier"`
	Rule      *string `json:"rule"`
	TimeAt    *string `json:"timeAt"`
	SortOrder *int    `json:"sortOrder"`
}

const supplementColumns = `id, item, goal, dose, tier, rule, time_at, sort_order`

func scanSupplement(row interface{ Scan(...any) error }) (*Supplement, error) {
	s := &Supplement{}
	err := row.Scan(&s.ID, &s.Item, &s.Goal, &s.Dose, &s.Tier, &s.Rule, &s.TimeAt, &s.SortOrder)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (db *DB) ListSupplements(userID string) ([]*Supplement, error) {
	rows, err := db.Query(`SELECT `+supplementColumns+` FROM supplements
		WHERE user_id = ? ORDER BY sort_order ASC, time_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	supplements := []*Supplement{}
	for rows.Next() {
		s, err := scanSupplement(rows)
		if err != nil {
			return nil, err
		}
		supplements = append(supplements, s)
	}
	return supplements, rows.Err()
}

func (db *DB) GetSupplement(userID, supplementID string) (*Supplement, error) {
	return scanSupplement(db.QueryRow(`SELECT `+supplementColumns+` FROM supplements
		WHERE id = ? AND user_id = ?`, supplementID, userID))
}

func (db *DB) CreateSupplement(userID string, input SupplementInput) (*Supplement, error) {
	id := NewID()
	if input.TimeAt == "" {
		input.TimeAt = "08:00"
	}
	_, err := db.Exec(`
		INSERT INTO supplements (id, user_id, item, goal, dose, tier, rule, time_at, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, input.Item, input.Goal, input.Dose, input.Tier, input.Rule,
		input.TimeAt, input.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("creating supplement: %w", err)
	}
	return db.GetSupplement(userID, id)
}

func (db *DB) UpdateSupplement(userID, supplementID string, patch SupplementPatch) (*Supplement, error) {
	current, err := db.GetSupplement(userID, supplementID)
	if err != nil {
		return nil, err
	}
	applyString(&current.Item, patch.Item)
	applyString(&current.Goal, patch.Goal)
	applyString(&current.Dose, patch.Dose)
	applyString(&current.Tier, patch.Tier)
	applyString(&current.Rule, patch.Rule)
	applyString(&current.TimeAt, patch.TimeAt)
	if patch.SortOrder != nil {
		current.SortOrder = *patch.SortOrder
	}

	res, err := db.Exec(`
		UPDATE supplements
		SET item = ?, goal = ?, dose = ?, tier = ?, rule = ?, time_at = ?,
		    sort_order = ?, updated_at = datetime('now')
		WHERE id = ? AND user_id = ?`,
		current.Item, current.Goal, current.Dose, current.Tier, current.Rule,
		current.TimeAt, current.SortOrder, supplementID, userID)
	if err != nil {
		return nil, fmt.Errorf("updating supplement: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}
	return current, nil
}

func (db *DB) DeleteSupplement(userID, supplementID string) error {
	res, err := db.Exec(`DELETE FROM supplements WHERE id = ? AND user_id = ?`, supplementID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- Supplement logs ---

type SupplementLog struct {
	ID           string     `json:"id"`
	SupplementID string     `json:"supplementId"`
	Date         string     `json:"date"`
	IsTaken      bool       `json:"isTaken"`
	TakenAt      *time.Time `json:"takenAt,omitempty"`
}

func (db *DB) ListSupplementLogs(userID, startDate, endDate string) ([]*SupplementLog, error) {
	query := `SELECT id, supplement_id, date, is_taken, taken_at
		FROM supplement_logs WHERE user_id = ?`
	args := []any{userID}
	if startDate != "" {
		query += ` AND date >= ?`
		args = append(args, startDate)
	}
	if endDate != "" {
		query += ` AND date <= ?`
		args = append(args, endDate)
	}
	query += ` ORDER BY date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []*SupplementLog{}
	for rows.Next() {
		l := &SupplementLog{}
		if err := rows.Scan(&l.ID, &l.SupplementID, &l.Date, &l.IsTaken, &l.TakenAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (db *DB) ToggleSupplementLog(userID, supplementID, date string, isTaken bool) (*SupplementLog, error) {
	var takenAt *time.Time
	if isTaken {
		now := time.Now().UTC()
		takenAt = &now
	}
	_, err := db.Exec(`
		INSERT INTO supplement_logs (id, user_id, supplement_id, date, is_taken, taken_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, supplement_id, date)
		DO UPDATE SET is_taken = excluded.is_taken, taken_at = excluded.taken_at`,
		NewID(), userID, supplementID, date, isTaken, takenAt)
	if err != nil {
		return nil, fmt.Errorf("toggling supplement log: %w", err)
	}

	l := &SupplementLog{}
	err = db.QueryRow(`SELECT id, supplement_id, date, is_taken, taken_at
		FROM supplement_logs WHERE user_id = ? AND supplement_id = ? AND date = ?`,
		userID, supplementID, date).Scan(&l.ID, &l.SupplementID, &l.Date, &l.IsTaken, &l.TakenAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}
