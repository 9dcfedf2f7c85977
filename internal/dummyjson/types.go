package dummyjson

import "strings"

// Difficulty is the closed set of recipe difficulty labels used by the API.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulty labels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Normalized maps case or whitespace variants onto the canonical label.
// Unknown values are returned trimmed but otherwise untouched.
func (d Difficulty) Normalized() Difficulty {
	trimmed := strings.TrimSpace(string(d))
	for _, known := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return Difficulty(trimmed)
}

// Recipe mirrors a single recipe object returned by /recipes and /recipes/{id}.
type Recipe struct {
	ID                 int        `json:"id" validate:"gt=0"`
	Name               string     `json:"name" validate:"required"`
	Ingredients        []string   `json:"ingredients"`
	Instructions       []string   `json:"instructions"`
	PrepTimeMinutes    int        `json:"prepTimeMinutes"`
	CookTimeMinutes    int        `json:"cookTimeMinutes"`
	Servings           int        `json:"servings"`
	Difficulty         Difficulty `json:"difficulty"`
	Cuisine            string     `json:"cuisine"`
	CaloriesPerServing int        `json:"caloriesPerServing"`
	Tags               []string   `json:"tags"`
	UserID             int        `json:"userId"`
	Image              string     `json:"image" validate:"required"`
	Rating             float64    `json:"rating"`
	ReviewCount        int        `json:"reviewCount"`
	MealType           []string   `json:"mealType"`
}

// TotalMinutes returns prep plus cook time.
func (r Recipe) TotalMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// Page mirrors the paged envelope returned by /recipes and /recipes/search.
type Page struct {
	Recipes []Recipe `json:"recipes" validate:"required"`
	Total   int      `json:"total"`
	Skip    int      `json:"skip"`
	Limit   int      `json:"limit"`
}
