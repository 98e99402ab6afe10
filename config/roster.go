package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
)

// RosterEntry is one line of the household roster file. The roster is the
// whole user directory for this deployment: one admin plus the family
// members. There is no self-registration.
type RosterEntry struct {
	ID       int64  `yaml:"id"`
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"` // bcrypt hash, admin only
	Email    string `yaml:"email"`
	IsAdmin  bool   `yaml:"isAdmin,omitempty"`
}

type rosterFile struct {
	Users []RosterEntry `yaml:"users"`
}

// LoadRoster reads the YAML roster and converts it to users. IDs must be
// unique and positive; exactly one entry must be the admin.
func LoadRoster(path string) ([]model.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return ParseRoster(raw)
}

func ParseRoster(raw []byte) ([]model.User, error) {
	var f rosterFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(f.Users) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}

	seen := make(map[int64]bool, len(f.Users))
	admins := 0
	users := make([]model.User, 0, len(f.Users))
	for _, e := range f.Users {
		if e.ID <= 0 {
			return nil, fmt.Errorf("roster entry %q: id must be positive", e.Username)
		}
		if e.Username == "" {
			return nil, fmt.Errorf("roster entry %d: username is required", e.ID)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("roster entry %q: duplicate id %d", e.Username, e.ID)
		}
		seen[e.ID] = true
		if e.IsAdmin {
			admins++
		}
		users = append(users, model.User{
			ID:           e.ID,
			Username:     e.Username,
			PasswordHash: e.Password,
			Email:        e.Email,
			IsAdmin:      e.IsAdmin,
		})
	}
	if admins != 1 {
		return nil, fmt.Errorf("roster must contain exactly one admin, found %d", admins)
	}
	return users, nil
}
