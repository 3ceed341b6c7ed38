package timeline

import (
	"testing"

	"github.com/andib0/onyx/internal/db"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"06:30", 390},
		{"23:59", 1439},
		{"9:05", 545},
		{"", 0},
		{"garbage", 0},
		{"12", 720},
	}
	for _, c := range cases {
		if got := ToMinutes(c.in); got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestComposeOrdersByStart(t *testing.T) {
	entries := Compose(Inputs{
		Blocks: []*db.ScheduleBlock{
			{ID: "b2", Start: "12:00", End: "13:00", Title: "Deep work"},
			{ID: "b1", Start: "06:00", End: "07:00", Title: "Morning walk"},
		},
		Supplements: []*db.Supplement{
			{ID: "s1", Item: "Creatine", TimeAt: "08:00"},
		},
	})

	got := []string{}
	for _, e := range entries {
		got = append(got, e.SourceID)
	}
	want := []string{"b1", "s1", "b2"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestComposeSupplementWindow(t *testing.T) {
	entries := Compose(Inputs{
		Supplements: []*db.Supplement{
			{ID: "s1", Item: "Magnesium", TimeAt: "21:50"},
		},
	})
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].End != "22:05" {
		t.Errorf("supplement end = %s, want 22:05", entries[0].End)
	}
	if !entries[0].Readonly {
		t.Error("supplement entry should be read-only")
	}
}

func TestComposeAnchorsMealsAndSession(t *testing.T) {
	entries := Compose(Inputs{
		Blocks: []*db.ScheduleBlock{
			{ID: "b1", Start: "07:00", End: "07:30", Title: "Breakfast", Tag: "nutrition"},
			{ID: "b2", Start: "17:00", End: "18:00", Title: "Gym session", Tag: "training"},
		},
		Meals: []*db.MealTemplate{
			{ID: "m1", Name: "Oats + whey"},
		},
		Program: &db.ProgramDay{ID: "pd1", Name: "Push A"},
	})

	byID := map[string]Entry{}
	for _, e := range entries {
		byID[e.SourceID] = e
	}
	if meal := byID["m1"]; meal.Start != "07:00" {
		t.Errorf("meal anchored at %q, want 07:00", meal.Start)
	}
	if session := byID["pd1"]; session.Start != "17:00" {
		t.Errorf("session anchored at %q, want 17:00", session.Start)
	}
}

func TestComposeUnanchoredSortsLast(t *testing.T) {
	entries := Compose(Inputs{
		Blocks: []*db.ScheduleBlock{
			{ID: "b1", Start: "09:00", End: "10:00", Title: "Errands"},
		},
		Meals: []*db.MealTemplate{
			{ID: "m1", Name: "Lunch"},
		},
	})
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[1].SourceID != "m1" {
		t.Errorf("unanchored meal should sort last, got %s", entries[1].SourceID)
	}
	if entries[1].Start != "" {
		t.Errorf("unanchored meal should have no start, got %q", entries[1].Start)
	}
}

func TestComposeDedupes(t *testing.T) {
	entries := Compose(Inputs{
		Blocks: []*db.ScheduleBlock{
			{ID: "b1", Start: "06:00", End: "07:00", Title: "Walk"},
			{ID: "b1", Start: "06:00", End: "07:00", Title: "Walk"},
		},
	})
	if len(entries) != 1 {
		t.Errorf("expected duplicate block collapsed, got %d entries", len(entries))
	}
}

func TestCurrentNext(t *testing.T) {
	entries := Compose(Inputs{
		Blocks: []*db.ScheduleBlock{
			{ID: "b1", Start: "06:00", End: "07:00", Title: "Walk"},
			{ID: "b2", Start: "09:00", End: "17:00", Title: "Work"},
			{ID: "b3", Start: "18:00", End: "19:00", Title: "Dinner"},
		},
	})

	// Inside a window.
	current, next := CurrentNext(entries, ToMinutes("10:30"))
	if current == nil || current.SourceID != "b2" {
		t.Fatalf("current = %v, want b2", current)
	}
	if next == nil || next.SourceID != "b3" {
		t.Fatalf("next = %v, want b3", next)
	}

	// In a gap: the first future entry is current.
	current, next = CurrentNext(entries, ToMinutes("08:00"))
	if current == nil || current.SourceID != "b2" {
		t.Errorf("gap current = %v, want b2", current)
	}

	// After everything: the last entry is current, no next.
	current, next = CurrentNext(entries, ToMinutes("22:00"))
	if current == nil || current.SourceID != "b3" {
		t.Errorf("late current = %v, want b3", current)
	}
	if next != nil {
		t.Errorf("late next = %v, want nil", next)
	}

	// Empty list.
	if c, n := CurrentNext(nil, 600); c != nil || n != nil {
		t.Error("empty timeline should yield nil, nil")
	}
}
