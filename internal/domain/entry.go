package domain

import (
	"fmt"
	"sort"
	"time"
)

// Date is a calendar day in "2006-01-02" form. The format sorts
// lexicographically in chronological order.
const dateLayout = "2006-01-02"

type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", raw, err)
	}

	return NewDate(t), nil
}

func (d Date) Before(other Date) bool {
	return d < other
}

func (d Date) String() string {
	return string(d)
}

// HealthEntry is one calendar day's set of physiological measurements.
type HealthEntry struct {
	Date       Date
	HeartRate  int
	SpO2       int
	Stress     int
	SleepHours float64
}

// Measurement ranges mirror what a consumer wearable reports.
const (
	MinHeartRate  = 40
	MaxHeartRate  = 120
	MinSpO2       = 90
	MaxSpO2       = 100
	MinStress     = 1
	MaxStress     = 100
	MinSleepHours = 0.0
	MaxSleepHours = 12.0
)

func (e HealthEntry) Validate() error {
	if e.Date == "" {
		return fmt.Errorf("%w: entry date is empty", ErrInvalidInput)
	}
	if _, err := ParseDate(string(e.Date)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if e.HeartRate < MinHeartRate || e.HeartRate > MaxHeartRate {
		return fmt.Errorf("%w: heart rate %d outside %d-%d bpm", ErrInvalidInput, e.HeartRate, MinHeartRate, MaxHeartRate)
	}
	if e.SpO2 < MinSpO2 || e.SpO2 > MaxSpO2 {
		return fmt.Errorf("%w: SpO2 %d%% outside %d-%d%%", ErrInvalidInput, e.SpO2, MinSpO2, MaxSpO2)
	}
	if e.Stress < MinStress || e.Stress > MaxStress {
		return fmt.Errorf("%w: stress %d outside %d-%d", ErrInvalidInput, e.Stress, MinStress, MaxStress)
	}
	if e.SleepHours < MinSleepHours || e.SleepHours > MaxSleepHours {
		return fmt.Errorf("%w: sleep %.1fh outside %.0f-%.0fh", ErrInvalidInput, e.SleepHours, MinSleepHours, MaxSleepHours)
	}

	return nil
}

// HealthHistory is one user's chronological list of entries. Invariants:
// dates are unique and the slice is sorted ascending by date.
type HealthHistory []HealthEntry

// Upsert replaces the entry holding the same date in place, or appends
// when the date is new, then restores ascending date order. The result
// holds at most one entry per date.
func (h HealthHistory) Upsert(entry HealthEntry) HealthHistory {
	merged := make(HealthHistory, len(h))
	copy(merged, h)

	replaced := false
	for i := range merged {
		if merged[i].Date == entry.Date {
			merged[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		merged = append(merged, entry)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	return merged
}

// Latest returns the most recent entry, relying on the ascending order
// invariant.
func (h HealthHistory) Latest() (HealthEntry, bool) {
	if len(h) == 0 {
		return HealthEntry{}, false
	}

	return h[len(h)-1], true
}

// At returns the entry for a given date, if present.
func (h HealthHistory) At(date Date) (HealthEntry, bool) {
	for _, entry := range h {
		if entry.Date == date {
			return entry, true
		}
	}

	return HealthEntry{}, false
}
