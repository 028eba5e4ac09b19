// Package config reads client settings from the environment. main loads a
// .env file first (godotenv), so a checked-out repo works with zero setup.
package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	// APIBaseURL is the InterviewFlow backend, e.g. "http://localhost:8080/api".
	APIBaseURL string
	// SessionPath is the JSON file holding the persisted login session.
	SessionPath string
	// CachePath is the sqlite file for the offline record-set snapshot.
	CachePath string

	// Notion export (optional; the export command refuses to run without them).
	NotionToken string
	NotionDBID  string
}

func FromEnv() Config {
	cfg := Config{
		APIBaseURL:  os.Getenv("INTERVIEWFLOW_API"),
		SessionPath: os.Getenv("INTERVIEWFLOW_SESSION"),
		CachePath:   os.Getenv("INTERVIEWFLOW_CACHE"),
		NotionToken: os.Getenv("NOTION_TOKEN"),
		NotionDBID:  os.Getenv("NOTION_DB_ID"),
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080/api"
	}
	if cfg.SessionPath == "" {
		cfg.SessionPath = filepath.Join(stateDir(), "session.json")
	}
	if cfg.CachePath == "" {
		cfg.CachePath = filepath.Join(stateDir(), "cache.sqlite")
	}
	return cfg
}

// stateDir resolves to ~/.interviewflow, falling back to the working
// directory when the home dir is unknown.
func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".interviewflow"
	}
	return filepath.Join(home, ".interviewflow")
}
