package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/andib0/onyx/internal/nutrition"
)

type MealTag struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type MealTemplate struct {
	ID        string    `json:"id"`
	DayOfWeek string    `json:"dayOfWeek"`
	Name      string    `json:"name"`
	Examples  string    `json:"examples"`
	Grams     *float64  `json:"grams,omitempty"`
	FoodID    *string   `json:"foodId,omitempty"`
	SortOrder int       `json:"sortOrder"`
	Tags      []MealTag `json:"tags"`
}

type MealTemplateInput struct {
	DayOfWeek string
	Name      string
	Examples  string
	Grams     *float64
	FoodID    *string
	SortOrder int
	Tags      []MealTag
}

type MealTemplatePatch struct {
	DayOfWeek *string    `json:"dayOfWeek"`
	Name      *string    `json:"name"`
	Examples  *string    `json:"examples"`
	Grams     *float64   `json:"grams"`
	SortOrder *int       `json:"sortOrder"`
	Tags      *[]MealTag `json:"tags"`
}

const mealTemplateColumns = `id, day_of_week, name, examples, grams, food_id, sort_order`

func scanMealTemplate(row interface{ Scan(...any) error }) (*MealTemplate, error) {
	m := &MealTemplate{}
	err := row.Scan(&m.ID, &m.DayOfWeek, &m.Name, &m.Examples, &m.Grams, &m.FoodID, &m.SortOrder)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (db *DB) ListMealTemplates(userID, dayOfWeek string) ([]*MealTemplate, error) {
	query := `SELECT ` + mealTemplateColumns + ` FROM meal_templates WHERE user_id = ?`
	args := []any{userID}
	if dayOfWeek != "" {
		query += ` AND day_of_week = ?`
		args = append(args, dayOfWeek)
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []*MealTemplate{}
	for rows.Next() {
		m, err := scanMealTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range templates {
		if m.Tags, err = db.mealTemplateTags(m.ID); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

func (db *DB) GetMealTemplate(userID, templateID string) (*MealTemplate, error) {
	m, err := scanMealTemplate(db.QueryRow(`SELECT `+mealTemplateColumns+` FROM meal_templates
		WHERE id = ? AND user_id = ?`, templateID, userID))
	if err != nil {
		return nil, err
	}
	if m.Tags, err = db.mealTemplateTags(m.ID); err != nil {
		return nil, err
	}
	return m, nil
}

func (db *DB) mealTemplateTags(templateID string) ([]MealTag, error) {
	rows, err := db.Query(`SELECT label, value FROM meal_template_tags
		WHERE meal_template_id = ? ORDER BY rowid ASC`, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []MealTag{}
	for rows.Next() {
		var t MealTag
		if err := rows.Scan(&t.Label, &t.Value); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (db *DB) CreateMealTemplate(userID string, input MealTemplateInput) (*MealTemplate, error) {
	id := NewID()
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO meal_templates (id, user_id, day_of_week, name, examples, grams, food_id, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, input.DayOfWeek, input.Name, input.Examples, input.Grams,
		input.FoodID, input.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("creating meal template: %w", err)
	}
	if err := insertMealTags(tx, id, input.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return db.GetMealTemplate(userID, id)
}

// UpdateMealTemplate applies a partial patch. A present tags array replaces
// the template's tag set wholesale.
func (db *DB) UpdateMealTemplate(userID, templateID string, patch MealTemplatePatch) (*MealTemplate, error) {
	current, err := db.GetMealTemplate(userID, templateID)
	if err != nil {
		return nil, err
	}
	applyString(&current.DayOfWeek, patch.DayOfWeek)
	applyString(&current.Name, patch.Name)
	applyString(&current.Examples, patch.Examples)
	if patch.Grams != nil {
		current.Grams = patch.Grams
	}
	if patch.SortOrder != nil {
		current.SortOrder = *patch.SortOrder
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE meal_templates
		SET day_of_week = ?, name = ?, examples = ?, grams = ?, sort_order = ?,
		    updated_at = datetime('now')
		WHERE id = ? AND user_id = ?`,
		current.DayOfWeek, current.Name, current.Examples, current.Grams,
		current.SortOrder, templateID, userID)
	if err != nil {
		return nil, fmt.Errorf("updating meal template: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}

	if patch.Tags != nil {
		if _, err := tx.Exec(`DELETE FROM meal_template_tags WHERE meal_template_id = ?`, templateID); err != nil {
			return nil, fmt.Errorf("clearing tags: %w", err)
		}
		if err := insertMealTags(tx, templateID, *patch.Tags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return db.GetMealTemplate(userID, templateID)
}

// UpdateMealGrams sets grams and regenerates the template's macro tags from
// the linked food's per-100g values. The only derived-field rule in the app.
func (db *DB) UpdateMealGrams(userID, templateID string, grams float64, foodID string) (*MealTemplate, error) {
	if _, err := db.GetMealTemplate(userID, templateID); err != nil {
		return nil, err
	}
	food, err := db.GetFood(foodID)
	if err != nil {
		return nil, err
	}

	derived := nutrition.RecomputeTags(nutrition.MacroSource{
		CaloriesPer100g: food.CaloriesPer100g,
		ProteinPer100g:  food.ProteinPer100g,
		CarbsPer100g:    food.CarbsPer100g,
	}, grams)
	tags := make([]MealTag, 0, len(derived))
	for _, t := range derived {
		tags = append(tags, MealTag{Label: t.Label, Value: t.Value})
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		UPDATE meal_templates
		SET grams = ?, food_id = ?, updated_at = datetime('now')
		WHERE id = ? AND user_id = ?`, grams, foodID, templateID, userID)
	if err != nil {
		return nil, fmt.Errorf("updating grams: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM meal_template_tags WHERE meal_template_id = ?`, templateID); err != nil {
		return nil, fmt.Errorf("clearing tags: %w", err)
	}
	if err := insertMealTags(tx, templateID, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return db.GetMealTemplate(userID, templateID)
}

func (db *DB) DeleteMealTemplate(userID, templateID string) error {
	res, err := db.Exec(`DELETE FROM meal_templates WHERE id = ? AND user_id = ?`, templateID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func insertMealTags(tx *sql.Tx, templateID string, tags []MealTag) error {
	for _, t := range tags {
		if _, err := tx.Exec(`INSERT INTO meal_template_tags (id, meal_template_id, label, value)
			VALUES (?, ?, ?, ?)`, NewID(), templateID, t.Label, t.Value); err != nil {
			return fmt.Errorf("inserting tag: %w", err)
		}
	}
	return nil
}

// --- Meal logs ---

type MealLog struct {
	ID             string     `json:"id"`
	MealTemplateID string     `json:"mealTemplateId"`
	Date           string     `json:"date"`
	IsEaten        bool       `json:"isEaten"`
	EatenAt        *time.Time `json:"eatenAt,omitempty"`
}

func (db *DB) ListMealLogs(userID, date string) ([]*MealLog, error) {
	query := `SELECT id, meal_template_id, date, is_eaten, eaten_at
		FROM meal_logs WHERE user_id = ?`
	args := []any{userID}
	if date != "" {
		query += ` AND date = ?`
		args = append(args, date)
	}
	query += ` ORDER BY date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []*MealLog{}
	for rows.Next() {
		l := &MealLog{}
		if err := rows.Scan(&l.ID, &l.MealTemplateID, &l.Date, &l.IsEaten, &l.EatenAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (db *DB) ToggleMealLog(userID, templateID, date string, isEaten bool) (*MealLog, error) {
	var eatenAt *time.Time
	if isEaten {
		now := time.Now().UTC()
		eatenAt = &now
	}
	_, err := db.Exec(`
		INSERT INTO meal_logs (id, user_id, meal_template_id, date, is_eaten, eaten_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, meal_template_id, date)
		DO UPDATE SET is_eaten = excluded.is_eaten, eaten_at = excluded.eaten_at`,
		NewID(), userID, templateID, date, isEaten, eatenAt)
	if err != nil {
		return nil, fmt.Errorf("toggling meal log: %w", err)
	}

	l := &MealLog{}
	err = db.QueryRow(`SELECT id, meal_template_id, date, is_eaten, eaten_at
		FROM meal_logs WHERE user_id = ? AND meal_template_id = ? AND date = ?`,
		userID, templateID, date).Scan(&l.ID, &l.MealTemplateID, &l.Date, &l.IsEaten, &l.EatenAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}
