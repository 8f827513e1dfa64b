package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

type PlanOptions struct {
	// ShowThinking includes the model's reasoning narrative.
	ShowThinking bool
	Width        int
}

const defaultPlanWidth = 76

// Plan renders a generated diet plan as labeled meal sections.
func Plan(plan domain.DietPlan, opts PlanOptions) string {
	s := newStyles()

	width := opts.Width
	if width <= 0 {
		width = defaultPlanWidth
	}
	body := s.mealBody.Width(width)

	lines := []string{s.title.Render("One-Day Diet Plan")}

	meals := []struct {
		label string
		meal  domain.Meal
	}{
		{"Breakfast", plan.Breakfast},
		{"Lunch", plan.Lunch},
		{"Dinner", plan.Dinner},
		{"Snacks", plan.Snacks},
	}

	for _, m := range meals {
		section := lipgloss.JoinVertical(
			lipgloss.Left,
			s.mealTitle.Render(m.label+": "+m.meal.Title),
			body.Render(m.meal.Description),
		)
		lines = append(lines, s.section.Render(section))
	}

	if strings.TrimSpace(plan.Notes) != "" {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			s.mealTitle.Render("Notes"),
			s.note.Width(width).Render(plan.Notes),
		)))
	}

	if opts.ShowThinking && strings.TrimSpace(plan.ThinkingProcess) != "" {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			s.mealTitle.Render("Thinking process"),
			s.faint.Width(width).Render(plan.ThinkingProcess),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
