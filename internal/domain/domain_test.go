package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date string, heartRate int) HealthEntry {
	return HealthEntry{Date: Date(date), HeartRate: heartRate, SpO2: 98, Stress: 30, SleepHours: 7.5}
}

func TestHistoryUpsertReplacesExistingDateInPlace(t *testing.T) {
	history := HealthHistory{
		entry("2026-08-01", 62),
		entry("2026-08-02", 64),
		entry("2026-08-03", 66),
	}

	merged := history.Upsert(entry("2026-08-02", 90))

	require.Len(t, merged, len(history))
	got, ok := merged.At("2026-08-02")
	require.True(t, ok)
	assert.Equal(t, 90, got.HeartRate)

	// the original slice stays untouched
	unchanged, _ := history.At("2026-08-02")
	assert.Equal(t, 64, unchanged.HeartRate)
}

func TestHistoryUpsertAppendsNewDateAndKeepsOrder(t *testing.T) {
	history := HealthHistory{
		entry("2026-08-01", 62),
		entry("2026-08-05", 64),
	}

	merged := history.Upsert(entry("2026-08-03", 70))

	require.Len(t, merged, 3)
	assert.Equal(t, Date("2026-08-01"), merged[0].Date)
	assert.Equal(t, Date("2026-08-03"), merged[1].Date)
	assert.Equal(t, Date("2026-08-05"), merged[2].Date)
}

func TestHistoryUpsertIntoEmptyHistory(t *testing.T) {
	merged := HealthHistory{}.Upsert(entry("2026-08-30", 70))

	require.Len(t, merged, 1)
	latest, ok := merged.Latest()
	require.True(t, ok)
	assert.Equal(t, Date("2026-08-30"), latest.Date)
}

func TestHistoryLatestEmpty(t *testing.T) {
	_, ok := HealthHistory{}.Latest()
	assert.False(t, ok)
}

func TestHealthEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*HealthEntry)
		wantErr bool
	}{
		{name: "valid", mutate: func(e *HealthEntry) {}},
		{name: "missing date", mutate: func(e *HealthEntry) { e.Date = "" }, wantErr: true},
		{name: "garbage date", mutate: func(e *HealthEntry) { e.Date = "yesterday" }, wantErr: true},
		{name: "heart rate too low", mutate: func(e *HealthEntry) { e.HeartRate = 39 }, wantErr: true},
		{name: "heart rate upper bound", mutate: func(e *HealthEntry) { e.HeartRate = 120 }},
		{name: "spo2 too high", mutate: func(e *HealthEntry) { e.SpO2 = 101 }, wantErr: true},
		{name: "stress zero", mutate: func(e *HealthEntry) { e.Stress = 0 }, wantErr: true},
		{name: "negative sleep", mutate: func(e *HealthEntry) { e.SleepHours = -1 }, wantErr: true},
		{name: "sleep upper bound", mutate: func(e *HealthEntry) { e.SleepHours = 12 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entry("2026-08-30", 70)
			tt.mutate(&e)

			err := e.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, Date("2026-08-30"), date)

	_, err = ParseDate("30/08/2026")
	require.Error(t, err)
}

func TestNewDateUsesCalendarDay(t *testing.T) {
	ts := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Date("2026-08-30"), NewDate(ts))
}

func TestProfilePatchApplyPreservesIdentityAndHash(t *testing.T) {
	stored := Account{
		Username:     "alice",
		PasswordHash: "bcrypt-hash",
		Name:         "Alice",
		Age:          30,
		Gender:       GenderFemale,
		Email:        "alice@example.com",
	}

	newName := "New Name"
	newAge := 31
	patched := ProfilePatch{Name: &newName, Age: &newAge}.Apply(stored)

	assert.Equal(t, "alice", patched.Username)
	assert.Equal(t, "bcrypt-hash", patched.PasswordHash)
	assert.Equal(t, "New Name", patched.Name)
	assert.Equal(t, 31, patched.Age)
	assert.Equal(t, GenderFemale, patched.Gender)
	assert.Equal(t, "alice@example.com", patched.Email)
}

func TestProfilePatchIsZero(t *testing.T) {
	assert.True(t, ProfilePatch{}.IsZero())

	name := "x"
	assert.False(t, ProfilePatch{Name: &name}.IsZero())
}

func TestAccountPublicStripsHash(t *testing.T) {
	account := Account{Username: "bob", PasswordHash: "secret-hash", Name: "Bob"}

	profile := account.Public()

	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, "Bob", profile.Name)
	// Profile has no hash field at all; spot-check the mapping stayed honest.
	assert.Equal(t, Profile{Username: "bob", Name: "Bob"}, profile)
}

func TestParseGender(t *testing.T) {
	for _, raw := range []string{"", "male", "female", "other"} {
		_, err := ParseGender(raw)
		assert.NoError(t, err, raw)
	}

	_, err := ParseGender("unknown")
	require.Error(t, err)
}
