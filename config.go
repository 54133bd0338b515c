package sentrydata

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the SentryData shell configuration. It governs how the
// interactive prompt renders results; the core pipeline itself takes no
// configuration.
type Config struct {
	Prompt  string `yaml:"prompt"`
	NoColor bool   `yaml:"no_color"`
	Trace   bool   `yaml:"trace"`
}

// LoadConfig loads configuration from a YAML file with environment variable
// overrides. A missing file is not an error; defaults are returned instead.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		applyEnvOverrides(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	config := getDefaultConfig()

	err = yaml.UnmarshalWithOptions(data, config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	applyEnvOverrides(config)

	return config, nil
}

func getDefaultConfig() *Config {
	return &Config{
		Prompt:  "SentryData> ",
		NoColor: false,
		Trace:   true,
	}
}

func validateConfig(config *Config) error {
	if strings.ContainsAny(config.Prompt, "\r\n") {
		return fmt.Errorf("prompt must be a single line, got %q", config.Prompt)
	}

	return nil
}

// applyEnvOverrides lets SENTRYDATA_* environment variables win over file
// values, so CI runs can adjust the shell without editing the config.
func applyEnvOverrides(config *Config) {
	if prompt, ok := os.LookupEnv("SENTRYDATA_PROMPT"); ok {
		config.Prompt = prompt
	}
	if noColor, ok := os.LookupEnv("SENTRYDATA_NO_COLOR"); ok {
		if v, err := strconv.ParseBool(noColor); err == nil {
			config.NoColor = v
		}
	}
	if trace, ok := os.LookupEnv("SENTRYDATA_TRACE"); ok {
		if v, err := strconv.ParseBool(trace); err == nil {
			config.Trace = v
		}
	}
}

func loadEnvFiles() error {
	err := godotenv.Load(".env")
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	return nil
}
