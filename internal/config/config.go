package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user-editable settings. All fields have working defaults so
// a missing config file is not an error.
type Config struct {
	// ReportServiceURL is the base URL of the remote reporting service.
	ReportServiceURL string `yaml:"report_service_url"`
	// AuthToken is the bearer token sent to the reporting service.
	AuthToken string `yaml:"auth_token"`
	// AchievementsKey is the persistence key the achievement state is
	// stored under.
	AchievementsKey string `yaml:"achievements_key"`
}

func Default() Config {
	return Config{
		ReportServiceURL: "https://api.skinsight.app",
		AchievementsKey:  "achievements.v1",
	}
}

// Load reads the config file at path, applying defaults for any field not
// set. A missing file yields pure defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
