package models

import "time"

const (
	BackendFile = "file"
	BackendAPI  = "api"
)

// Settings represents the nodeconf application configuration
type Settings struct {
	Store   StoreSettings   `yaml:"store"`
	UI      UISettings      `yaml:"ui"`
	Logging LoggingSettings `yaml:"logging"`
}

// StoreSettings selects where the node configuration lives
type StoreSettings struct {
	Backend      string        `yaml:"backend"` // "file" or "api"
	Path         string        `yaml:"path"`
	APIURL       string        `yaml:"api_url"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// UISettings controls UI preferences
type UISettings struct {
	Language string `yaml:"language"`
}

// LoggingSettings controls the log file written while the TUI runs
type LoggingSettings struct {
	Level     string `yaml:"level"`
	LogToFile bool   `yaml:"log_to_file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Store: StoreSettings{
			Backend:      BackendFile,
			Path:         "",
			APIURL:       "http://127.0.0.1:5001",
			PollInterval: 5 * time.Second,
		},
		UI: UISettings{
			Language: "en",
		},
		Logging: LoggingSettings{
			Level:     "info",
			LogToFile: true,
		},
	}
}
