package nutrition

import "testing"

func fp(v float64) *float64 { return &v }

func TestRecomputeTags(t *testing.T) {
	chicken := MacroSource{
		CaloriesPer100g: fp(165),
		ProteinPer100g:  fp(31),
		CarbsPer100g:    fp(0),
	}

	tags := RecomputeTags(chicken, 200)
	want := []Tag{
		{Label: "Protein", Value: "62"},
		{Label: "Carbs", Value: "0"},
		{Label: "Calories", Value: "330"},
	}
	if len(tags) != len(want) {
		t.Fatalf("got %d tags, want %d: %v", len(tags), len(want), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag %d = %+v, want %+v", i, tags[i], want[i])
		}
	}
}

func TestRecomputeTagsSkipsUndeclaredMacros(t *testing.T) {
	wheyIsolate := MacroSource{ProteinPer100g: fp(90)}

	tags := RecomputeTags(wheyIsolate, 30)
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(tags), tags)
	}
	if tags[0].Label != "Protein" || tags[0].Value != "27" {
		t.Errorf("got %+v, want Protein=27", tags[0])
	}
}

func TestRecomputeTagsRounding(t *testing.T) {
	oats := MacroSource{
		CaloriesPer100g: fp(389),
		ProteinPer100g:  fp(16.9),
		CarbsPer100g:    fp(66.3),
	}

	tags := RecomputeTags(oats, 45)
	// 16.9*0.45 = 7.605 -> 8, 66.3*0.45 = 29.835 -> 30, 389*0.45 = 175.05 -> 175
	want := map[string]string{"Protein": "8", "Carbs": "30", "Calories": "175"}
	for _, tag := range tags {
		if want[tag.Label] != tag.Value {
			t.Errorf("%s = %s, want %s", tag.Label, tag.Value, want[tag.Label])
		}
	}
}

func TestRecomputeTagsNoMacros(t *testing.T) {
	if tags := RecomputeTags(MacroSource{}, 100); len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}
