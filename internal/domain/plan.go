package domain

// Meal is a single recommendation inside a diet plan.
type Meal struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DietPlan is the structured reply of the plan endpoint. It is held in
// memory for display only and never persisted.
type DietPlan struct {
	Breakfast       Meal   `json:"breakfast"`
	Lunch           Meal   `json:"lunch"`
	Dinner          Meal   `json:"dinner"`
	Snacks          Meal   `json:"snacks"`
	Notes           string `json:"notes"`
	ThinkingProcess string `json:"thinkingProcess"`
}
