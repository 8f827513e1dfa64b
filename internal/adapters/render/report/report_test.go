package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

func sampleHistory() domain.HealthHistory {
	return domain.HealthHistory{
		{Date: "2026-08-28", HeartRate: 62, SpO2: 98, Stress: 25, SleepHours: 8},
		{Date: "2026-08-29", HeartRate: 68, SpO2: 97, Stress: 40, SleepHours: 7},
		{Date: "2026-08-30", HeartRate: 75, SpO2: 96, Stress: 55, SleepHours: 6.5},
	}
}

func TestDashboardShowsLatestValuesAndTrends(t *testing.T) {
	output := Dashboard(sampleHistory(), DashboardOptions{})

	assert.Contains(t, output, "HealthWise Dashboard")
	assert.Contains(t, output, "days recorded: 3")
	assert.Contains(t, output, "latest entry: 2026-08-30")
	assert.Contains(t, output, "heart rate")
	assert.Contains(t, output, "75bpm")
	assert.Contains(t, output, "96%")
	assert.Contains(t, output, "6.5h")
	assert.Contains(t, output, "↑")
	assert.Contains(t, output, "[")
	assert.Contains(t, output, "]")
}

func TestDashboardEmptyHistory(t *testing.T) {
	output := Dashboard(nil, DashboardOptions{})

	assert.Contains(t, output, "days recorded: 0")
	assert.Contains(t, output, "No health data yet")
	assert.NotContains(t, output, "latest entry")
}

func TestDashboardTrendWindowCapsHistory(t *testing.T) {
	var history domain.HealthHistory
	for day := 1; day <= 20; day++ {
		history = history.Upsert(domain.HealthEntry{
			Date:       domain.Date(fmt.Sprintf("2026-08-%02d", day)),
			HeartRate:  60 + day,
			SpO2:       97,
			Stress:     30,
			SleepHours: 7,
		})
	}

	output := Dashboard(history, DashboardOptions{TrendDays: 5})
	assert.Contains(t, output, "days recorded: 20")
}

func TestPlanRendersAllMealsAndNotes(t *testing.T) {
	plan := domain.DietPlan{
		Breakfast:       domain.Meal{Title: "Oatmeal", Description: "Oats with fruit."},
		Lunch:           domain.Meal{Title: "Salad", Description: "Greens with lentils."},
		Dinner:          domain.Meal{Title: "Salmon", Description: "With vegetables."},
		Snacks:          domain.Meal{Title: "Yogurt", Description: "Plain with honey."},
		Notes:           "Drink more water.",
		ThinkingProcess: "Started from the stated preferences.",
	}

	output := Plan(plan, PlanOptions{})

	assert.Contains(t, output, "One-Day Diet Plan")
	assert.Contains(t, output, "Breakfast: Oatmeal")
	assert.Contains(t, output, "Lunch: Salad")
	assert.Contains(t, output, "Dinner: Salmon")
	assert.Contains(t, output, "Snacks: Yogurt")
	assert.Contains(t, output, "Drink more water.")
	assert.NotContains(t, output, "Started from the stated preferences.")
}

func TestPlanShowThinkingIncludesNarrative(t *testing.T) {
	plan := domain.DietPlan{
		Breakfast:       domain.Meal{Title: "Oatmeal"},
		ThinkingProcess: "Started from the stated preferences.",
	}

	output := Plan(plan, PlanOptions{ShowThinking: true})
	assert.Contains(t, output, "Thinking process")
	assert.Contains(t, output, "Started from the stated preferences.")
}
