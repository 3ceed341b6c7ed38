package db

import (
	"database/sql"
	"fmt"
	"time"
)

type ScheduleBlock struct {
	ID        string `json:"id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Title     string `json:"title"`
	Purpose   string `json:"purpose"`
	Good      string `json:"good"`
	Tag       string `json:"tag"`
	Readonly  bool   `json:"readonly"`
	Source    string `json:"source"`
	SortOrder int    `json:"sortOrder"`
}

type ScheduleBlockInput struct {
	Start     string
	End       string
	Title     string
	Purpose   string
	Good      string
	Tag       string
	Readonly  bool
	Source    string
	SortOrder int
}

type ScheduleBlockPatch struct {
	Start     *string `json:"start"`
	End       *string `json:"end"`
	Title     *string `json:"title"`
	Purpose   *string `json:"purpose"`
	Good      *string `json:"good"`
	Tag       *string `json:"tag"`
	Readonly  *bool   `json:"readonly"`
	Source    *string `json:"source"`
	SortOrder *int    `json:"sortOrder"`
}

const blockColumns = `id, start_time, end_time, title, purpose, good, tag, readonly, source, sort_order`

func scanBlock(row interface{ Scan(...any) error }) (*ScheduleBlock, error) {
	b := &ScheduleBlock{}
	err := row.Scan(&b.ID, &b.Start, &b.End, &b.Title, &b.Purpose, &b.Good,
		&b.Tag, &b.Readonly, &b.Source, &b.SortOrder)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (db *DB) ListScheduleBlocks(userID string) ([]*ScheduleBlock, error) {
	rows, err := db.Query(`SELECT `+blockColumns+` FROM schedule_blocks
		WHERE user_id = ? ORDER BY sort_order ASC, start_time ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocks := []*ScheduleBlock{}
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (db *DB) GetScheduleBlock(userID, blockID string) (*ScheduleBlock, error) {
	return scanBlock(db.QueryRow(`SELECT `+blockColumns+` FROM schedule_blocks
		WHERE id = ? AND user_id = ?`, blockID, userID))
}

func (db *DB) CreateScheduleBlock(userID string, input ScheduleBlockInput) (*ScheduleBlock, error) {
	id := NewID()
	if input.Source == "" {
		input.Source = "schedule"
	}
	_, err := db.Exec(`
		INSERT INTO schedule_blocks (id, user_id, start_time, end_time, title, purpose, good, tag, readonly, source, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, input.Start, input.End, input.Title, input.Purpose,
		input.Good, input.Tag, input.Readonly, input.Source, input.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("creating schedule block: %w", err)
	}
	return db.GetScheduleBlock(userID, id)
}

func (db *DB) UpdateScheduleBlock(userID, blockID string, patch ScheduleBlockPatch) (*ScheduleBlock, error) {
	current, err := db.GetScheduleBlock(userID, blockID)
	if err != nil {
		return nil, err
	}
	applyString(&current.Start, patch.Start)
	applyString(&current.End, patch.End)
	applyString(&current.Title, patch.Title)
	applyString(&current.Purpose, patch.Purpose)
	applyString(&current.Good, patch.Good)
	applyString(&current.Tag, patch.Tag)
	if patch.Readonly != nil {
		current.Readonly = *patch.Readonly
	}
	applyString(&current.Source, patch.Source)
	if patch.SortOrder != nil {
		current.SortOrder = *patch.SortOrder
	}

	res, err := db.Exec(`
		UPDATE schedule_blocks
		SET start_time = ?, end_time = ?, title = ?, purpose = ?, good = ?,
		    tag = ?, readonly = ?, source = ?, sort_order = ?, updated_at = datetime('now')
		WHERE id = ? AND user_id = ?`,
		current.Start, current.End, current.Title, current.Purpose, current.Good,
		current.Tag, current.Readonly, current.Source, current.SortOrder, blockID, userID)
	if err != nil {
		return nil, fmt.Errorf("updating schedule block: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}
	return current, nil
}

func (db *DB) DeleteScheduleBlock(userID, blockID string) error {
	res, err := db.Exec(`DELETE FROM schedule_blocks WHERE id = ? AND user_id = ?`, blockID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// --- Completions ---

type Completion struct {
	ID          string     `json:"id"`
	BlockID     string     `json:"blockId"`
	Date        string     `json:"date"`
	IsComplete  bool       `json:"isComplete"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (db *DB) ListCompletions(userID, date string) ([]*Completion, error) {
	rows, err := db.Query(`SELECT id, block_id, date, is_complete, completed_at
		FROM completions WHERE user_id = ? AND date = ?`, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := []*Completion{}
	for rows.Next() {
		c := &Completion{}
		if err := rows.Scan(&c.ID, &c.BlockID, &c.Date, &c.IsComplete, &c.CompletedAt); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

// ToggleCompletion upserts the (user, block, date) row, so repeated toggles
// never accumulate duplicates.
func (db *DB) ToggleCompletion(userID, blockID, date string, isComplete bool) (*Completion, error) {
	var completedAt *time.Time
	if isComplete {
		now := time.Now().UTC()
		completedAt = &now
	}
	_, err := db.Exec(`
		INSERT INTO completions (id, user_id, block_id, date, is_complete, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, block_id, date)
		DO UPDATE SET is_complete = excluded.is_complete, completed_at = excluded.completed_at`,
		NewID(), userID, blockID, date, isComplete, completedAt)
	if err != nil {
		return nil, fmt.Errorf("toggling completion: %w", err)
	}

	c := &Completion{}
	err = db.QueryRow(`SELECT id, block_id, date, is_complete, completed_at
		FROM completions WHERE user_id = ? AND block_id = ? AND date = ?`,
		userID, blockID, date).Scan(&c.ID, &c.BlockID, &c.Date, &c.IsComplete, &c.CompletedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
