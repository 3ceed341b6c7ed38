// Package nutrition holds the pure macro arithmetic shared by the meal
// template handlers, kept free of persistence so it can be tested alone.
package nutrition

import (
	"math"
	"strconv"
)

// MacroSource carries a food's per-100g values. Nil means the food does not
// declare that macro.
type MacroSource struct {
	CaloriesPer100g *float64
	ProteinPer100g  *float64
	CarbsPer100g    *float64
}

// Tag is one derived macro annotation.
type Tag struct {
	Label string
	Value string
}

// RecomputeTags scales a food's per-100g macros to the given gram amount and
// returns the derived tag set, rounded to the nearest integer. Macros the
// food does not declare produce no tag.
func RecomputeTags(food MacroSource, grams float64) []Tag {
	factor := grams / 100
	var tags []Tag
	if food.ProteinPer100g != nil {
		tags = append(tags, Tag{Label: "Protein", Value: roundString(*food.ProteinPer100g * factor)})
	}
	if food.CarbsPer100g != nil {
		tags = append(tags, Tag{Label: "Carbs", Value: roundString(*food.CarbsPer100g * factor)})
	}
	if food.CaloriesPer100g != nil {
		tags = append(tags, Tag{Label: "Calories", Value: roundString(*food.CaloriesPer100g * factor)})
	}
	return tags
}

func roundString(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
