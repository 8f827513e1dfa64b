package toml

import (
	"fmt"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

const currentSchemaVersion = 1

type accountsSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *accountsSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s accountsSchema) validateVersion() error {
	return validateVersion(s.Version)
}

type sessionSchema struct {
	Version int            `toml:"version"`
	Session *profileSchema `toml:"session,omitempty"`
}

func (s *sessionSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s sessionSchema) validateVersion() error {
	return validateVersion(s.Version)
}

type historySchema struct {
	Version int           `toml:"version"`
	Entries []entrySchema `toml:"entries"`
}

func (s *historySchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s historySchema) validateVersion() error {
	return validateVersion(s.Version)
}

func validateVersion(version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported record schema version %d (current %d)", version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
	Name         string `toml:"name,omitempty"`
	Age          int    `toml:"age,omitempty"`
	Gender       string `toml:"gender,omitempty"`
	Email        string `toml:"email,omitempty"`
}

type profileSchema struct {
	Username string `toml:"username"`
	Name     string `toml:"name,omitempty"`
	Age      int    `toml:"age,omitempty"`
	Gender   string `toml:"gender,omitempty"`
	Email    string `toml:"email,omitempty"`
}

type entrySchema struct {
	Date       string  `toml:"date"`
	HeartRate  int     `toml:"heart_rate"`
	SpO2       int     `toml:"spo2"`
	Stress     int     `toml:"stress"`
	SleepHours float64 `toml:"sleep_hours"`
}

func accountToSchema(account domain.Account) accountSchema {
	return accountSchema{
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		Name:         account.Name,
		Age:          account.Age,
		Gender:       string(account.Gender),
		Email:        account.Email,
	}
}

func accountFromSchema(s accountSchema) domain.Account {
	return domain.Account{
		Username:     s.Username,
		PasswordHash: s.PasswordHash,
		Name:         s.Name,
		Age:          s.Age,
		Gender:       domain.Gender(s.Gender),
		Email:        s.Email,
	}
}

func profileToSchema(profile domain.Profile) profileSchema {
	return profileSchema{
		Username: profile.Username,
		Name:     profile.Name,
		Age:      profile.Age,
		Gender:   string(profile.Gender),
		Email:    profile.Email,
	}
}

func profileFromSchema(s profileSchema) domain.Profile {
	return domain.Profile{
		Username: s.Username,
		Name:     s.Name,
		Age:      s.Age,
		Gender:   domain.Gender(s.Gender),
		Email:    s.Email,
	}
}

func entryToSchema(entry domain.HealthEntry) entrySchema {
	return entrySchema{
		Date:       string(entry.Date),
		HeartRate:  entry.HeartRate,
		SpO2:       entry.SpO2,
		Stress:     entry.Stress,
		SleepHours: entry.SleepHours,
	}
}

func entryFromSchema(s entrySchema) domain.HealthEntry {
	return domain.HealthEntry{
		Date:       domain.Date(s.Date),
		HeartRate:  s.HeartRate,
		SpO2:       s.SpO2,
		Stress:     s.Stress,
		SleepHours: s.SleepHours,
	}
}
