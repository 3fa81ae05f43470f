package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/inklings/richarea/composer"
)

type userEntry struct {
	ID          string `toml:"id"`
	Username    string `toml:"username"`
	DisplayName string `toml:"display-name"`
}

type demoConfig struct {
	MaxLength   int         `toml:"max-length"`
	Placeholder string      `toml:"placeholder"`
	Debug       bool        `toml:"debug"`
	LogFile     string      `toml:"log-file"`
	Mouse       bool        `toml:"mouse"`
	Users       []userEntry `toml:"users"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		MaxLength:   500,
		Placeholder: "Write a comment…",
		Mouse:       true,
		Users: []userEntry{
			{ID: "u-alice", Username: "alice", DisplayName: "Alice Liddell"},
			{ID: "u-albert", Username: "albert", DisplayName: "Albert Moss"},
			{ID: "u-bob", Username: "bob", DisplayName: "Bob Stone"},
			{ID: "u-carol", Username: "carol", DisplayName: "Carol Danvers"},
		},
	}
}

func loadConfig() (demoConfig, error) {
	cfg := defaultConfig()
	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

func configPath() (string, error) {
	if v := os.Getenv("RICHAREA_CONFIG"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "richarea", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "richarea", "config.toml"), nil
}

func (c demoConfig) candidates() []composer.Candidate {
	out := make([]composer.Candidate, 0, len(c.Users))
	for _, u := range c.Users {
		out = append(out, composer.Candidate{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
		})
	}
	return out
}
