package db

import (
	"database/sql"
	"errors"
	"testing"
)

func TestSearchFoodsVerifiedFirst(t *testing.T) {
	database := newTestDB(t)

	fp := func(v float64) *float64 { return &v }
	if _, err := database.CreateFood(FoodInput{Name: "Greek Yogurt (homemade)", CaloriesPer100g: fp(60)}); err != nil {
		t.Fatalf("CreateFood: %v", err)
	}
	verified, err := database.CreateFood(FoodInput{Name: "Greek Yogurt 0%", CaloriesPer100g: fp(59), IsVerified: true})
	if err != nil {
		t.Fatalf("CreateFood: %v", err)
	}

	foods, err := database.SearchFoods("yogurt", 0)
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if len(foods) != 2 {
		t.Fatalf("got %d foods, want 2", len(foods))
	}
	if foods[0].ID != verified.ID {
		t.Errorf("verified food should rank first, got %q", foods[0].Name)
	}

	none, err := database.SearchFoods("does-not-exist", 0)
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestSearchFoodsLimitClamp(t *testing.T) {
	database := newTestDB(t)
	for i := 0; i < 3; i++ {
		if _, err := database.CreateFood(FoodInput{Name: "Rice variant " + string(rune('A'+i))}); err != nil {
			t.Fatalf("CreateFood: %v", err)
		}
	}
	foods, err := database.SearchFoods("rice", 2)
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if len(foods) != 2 {
		t.Errorf("limit 2 returned %d foods", len(foods))
	}
}

func TestUserFoodsIdempotentAdd(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "userfoods@example.com")
	food, err := database.CreateFood(FoodInput{Name: "Oats"})
	if err != nil {
		t.Fatalf("CreateFood: %v", err)
	}

	first, err := database.AddUserFood(user.ID, food.ID)
	if err != nil {
		t.Fatalf("AddUserFood: %v", err)
	}
	second, err := database.AddUserFood(user.ID, food.ID)
	if err != nil {
		t.Fatalf("repeat AddUserFood: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("repeat add created a new row")
	}

	items, err := database.ListUserFoods(user.ID)
	if err != nil {
		t.Fatalf("ListUserFoods: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d user foods, want 1", len(items))
	}
	if items[0].Food == nil || items[0].Food.Name != "Oats" {
		t.Errorf("user food did not join the catalog entry: %+v", items[0])
	}

	if err := database.RemoveUserFood(user.ID, first.ID); err != nil {
		t.Fatalf("RemoveUserFood: %v", err)
	}
	if err := database.RemoveUserFood(user.ID, first.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("removing twice: expected ErrNoRows, got %v", err)
	}
}

func TestAddUserFoodUnknownFood(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "badfood@example.com")
	if _, err := database.AddUserFood(user.ID, "no-such-food"); err == nil {
		t.Error("expected error adding a nonexistent food")
	}
}
