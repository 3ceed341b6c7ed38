package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type Food struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	CaloriesPer100g *float64 `json:"caloriesPer100g,omitempty"`
	ProteinPer100g  *float64 `json:"proteinPer100g,omitempty"`
	CarbsPer100g    *float64 `json:"carbsPer100g,omitempty"`
	FatPer100g      *float64 `json:"fatPer100g,omitempty"`
	FiberPer100g    *float64 `json:"fiberPer100g,omitempty"`
	SugarPer100g    *float64 `json:"sugarPer100g,omitempty"`
	SodiumMgPer100g *float64 `json:"sodiumMgPer100g,omitempty"`
	IsVerified      bool     `json:"isVerified"`
}

type FoodInput struct {
	Name            string
	Brand           string
	CaloriesPer100g *float64
	ProteinPer100g  *float64
	CarbsPer100g    *float64
	FatPer100g      *float64
	FiberPer100g    *float64
	SugarPer100g    *float64
	SodiumMgPer100g *float64
	IsVerified      bool
}

const foodColumns = `id, name, brand, calories_per_100g, protein_per_100g, carbs_per_100g,
	fat_per_100g, fiber_per_100g, sugar_per_100g, sodium_mg_per_100g, is_verified`

func scanFood(row interface{ Scan(...any) error }) (*Food, error) {
	f := &Food{}
	err := row.Scan(&f.ID, &f.Name, &f.Brand, &f.CaloriesPer100g, &f.ProteinPer100g,
		&f.CarbsPer100g, &f.FatPer100g, &f.FiberPer100g, &f.SugarPer100g,
		&f.SodiumMgPer100g, &f.IsVerified)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// SearchFoods matches names case-insensitively, verified entries first.
func (db *DB) SearchFoods(query string, limit int) ([]*Food, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := db.Query(`SELECT `+foodColumns+` FROM foods
		WHERE name LIKE '%' || ? || '%' COLLATE NOCASE
		ORDER BY is_verified DESC, name ASC LIMIT ?`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []*Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (db *DB) GetFood(id string) (*Food, error) {
	return scanFood(db.QueryRow(`SELECT `+foodColumns+` FROM foods WHERE id = ?`, id))
}

func (db *DB) CreateFood(input FoodInput) (*Food, error) {
	id := NewID()
	_, err := db.Exec(`
		INSERT INTO foods (id, name, brand, calories_per_100g, protein_per_100g, carbs_per_100g,
			fat_per_100g, fiber_per_100g, sugar_per_100g, sodium_mg_per_100g, is_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Name, input.Brand, input.CaloriesPer100g, input.ProteinPer100g,
		input.CarbsPer100g, input.FatPer100g, input.FiberPer100g, input.SugarPer100g,
		input.SodiumMgPer100g, input.IsVerified)
	if err != nil {
		return nil, fmt.Errorf("creating food: %w", err)
	}
	return db.GetFood(id)
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, cols string) string {
	parts := strings.Split(cols, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// --- User foods (saved shortcuts to catalog entries) ---

type UserFood struct {
	ID        string    `json:"id"`
	FoodID    string    `json:"foodId"`
	CreatedAt time.Time `json:"createdAt"`
	Food      *Food     `json:"food"`
}

func (db *DB) ListUserFoods(userID string) ([]*UserFood, error) {
	rows, err := db.Query(`
		SELECT uf.id, uf.food_id, uf.created_at, `+prefixColumns("f", foodColumns)+`
		FROM user_foods uf JOIN foods f ON f.id = uf.food_id
		WHERE uf.user_id = ? ORDER BY uf.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*UserFood{}
	for rows.Next() {
		uf := &UserFood{Food: &Food{}}
		f := uf.Food
		err := rows.Scan(&uf.ID, &uf.FoodID, &uf.CreatedAt,
			&f.ID, &f.Name, &f.Brand, &f.CaloriesPer100g, &f.ProteinPer100g,
			&f.CarbsPer100g, &f.FatPer100g, &f.FiberPer100g, &f.SugarPer100g,
			&f.SodiumMgPer100g, &f.IsVerified)
		if err != nil {
			return nil, err
		}
		items = append(items, uf)
	}
	return items, rows.Err()
}

// AddUserFood is idempotent on (user, food).
func (db *DB) AddUserFood(userID, foodID string) (*UserFood, error) {
	_, err := db.Exec(`
		INSERT INTO user_foods (id, user_id, food_id) VALUES (?, ?, ?)
		ON CONFLICT (user_id, food_id) DO NOTHING`, NewID(), userID, foodID)
	if err != nil {
		return nil, fmt.Errorf("adding user food: %w", err)
	}

	uf := &UserFood{}
	err = db.QueryRow(`SELECT id, food_id, created_at FROM user_foods
		WHERE user_id = ? AND food_id = ?`, userID, foodID).Scan(&uf.ID, &uf.FoodID, &uf.CreatedAt)
	if err != nil {
		return nil, err
	}
	if uf.Food, err = db.GetFood(foodID); err != nil {
		return nil, err
	}
	return uf, nil
}

func (db *DB) RemoveUserFood(userID, id string) error {
	res, err := db.Exec(`DELETE FROM user_foods WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
