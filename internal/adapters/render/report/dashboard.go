// Package report renders the trend dashboard and generated diet plans
// for the terminal.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

type DashboardOptions struct {
	// TrendDays caps how many trailing entries feed each trend row.
	TrendDays int
}

const defaultTrendDays = 14

type metricSpec struct {
	label  string
	unit   string
	min    float64
	max    float64
	value  func(domain.HealthEntry) float64
	digits int
}

func metricSpecs() []metricSpec {
	return []metricSpec{
		{label: "heart rate", unit: "bpm", min: domain.MinHeartRate, max: domain.MaxHeartRate, value: func(e domain.HealthEntry) float64 { return float64(e.HeartRate) }},
		{label: "SpO2", unit: "%", min: domain.MinSpO2, max: domain.MaxSpO2, value: func(e domain.HealthEntry) float64 { return float64(e.SpO2) }},
		{label: "stress", unit: "", min: domain.MinStress, max: domain.MaxStress, value: func(e domain.HealthEntry) float64 { return float64(e.Stress) }},
		{label: "sleep", unit: "h", min: domain.MinSleepHours, max: domain.MaxSleepHours, value: func(e domain.HealthEntry) float64 { return e.SleepHours }, digits: 1},
	}
}

// Dashboard renders the latest measurements with scale bars plus one
// trend row per metric over the trailing days.
func Dashboard(history domain.HealthHistory, opts DashboardOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("HealthWise Dashboard"),
		s.header.Render(fmt.Sprintf("days recorded: %d", len(history))),
	}

	latest, ok := history.Latest()
	if !ok {
		lines = append(lines, s.empty.Render("No health data yet. Record a day with `hw log`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf("latest entry: %s", latest.Date)))

	trendDays := opts.TrendDays
	if trendDays <= 0 {
		trendDays = defaultTrendDays
	}
	window := trailing(history, trendDays)

	for _, spec := range metricSpecs() {
		lines = append(lines, s.section.Render(metricBlock(spec, latest, window, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func metricBlock(spec metricSpec, latest domain.HealthEntry, window domain.HealthHistory, s styles) string {
	value := spec.value(latest)

	valueText := fmt.Sprintf("%.*f%s", spec.digits, value, spec.unit)
	head := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.metricKey.Render(fmt.Sprintf("%-10s", spec.label)),
		" ",
		scaleBar(value, spec.min, spec.max, 24, s),
		" ",
		s.mealBody.Render(fmt.Sprintf("%8s", valueText)),
		" ",
		s.metricMeta.Render(deltaLabel(spec, window)),
	)

	trend := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.metricMeta.Render(fmt.Sprintf("%-10s", "")),
		" ",
		s.barFill.Render(sparkline(spec, window)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, head, trend)
}

// scaleBar shows where the value sits within the metric's range.
func scaleBar(value, min, max float64, width int, s styles) string {
	if width <= 0 || max <= min {
		return ""
	}

	ratio := (value - min) / (max - min)
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))

	return s.barBracket.Render("[") +
		s.barFill.Render(strings.Repeat("█", filled)) +
		s.barEmpty.Render(strings.Repeat("░", width-filled)) +
		s.barBracket.Render("]")
}

// sparkline maps the trailing window onto eight block heights.
func sparkline(spec metricSpec, window domain.HealthHistory) string {
	if len(window) == 0 {
		return ""
	}

	ticks := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for _, entry := range window {
		ratio := (spec.value(entry) - spec.min) / (spec.max - spec.min)
		ratio = math.Max(0, math.Min(1, ratio))
		idx := int(math.Round(ratio * float64(len(ticks)-1)))
		b.WriteRune(ticks[idx])
	}

	return b.String()
}

func deltaLabel(spec metricSpec, window domain.HealthHistory) string {
	if len(window) < 2 {
		return ""
	}

	previous := spec.value(window[len(window)-2])
	current := spec.value(window[len(window)-1])
	diff := current - previous

	switch {
	case diff > 0:
		return fmt.Sprintf("↑ %.*f from %s", spec.digits, diff, window[len(window)-2].Date)
	case diff < 0:
		return fmt.Sprintf("↓ %.*f from %s", spec.digits, -diff, window[len(window)-2].Date)
	default:
		return fmt.Sprintf("= unchanged from %s", window[len(window)-2].Date)
	}
}

func trailing(history domain.HealthHistory, days int) domain.HealthHistory {
	if len(history) <= days {
		return history
	}

	return history[len(history)-days:]
}
