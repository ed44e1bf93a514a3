package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const configFileName = ".readability.yml"

// Config is the top-level configuration.
type Config struct {
	Encoding  string   `yaml:"encoding" validate:"omitempty,oneof=utf8 cp437 cp850 iso-8859-1"`
	Markdown  bool     `yaml:"markdown"`
	Format    string   `yaml:"format" validate:"omitempty,oneof=text styled json table panel"`
	Syllables string   `yaml:"syllables" validate:"omitempty,oneof=literal corrected"`
	Panel     Panel    `yaml:"panel"`
	Include   []string `yaml:"include" validate:"dive,required"`
}

// Panel configures the framed report.
type Panel struct {
	Width int `yaml:"width" validate:"omitempty,min=40,max=200"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Encoding:  "utf8",
		Format:    "text",
		Syllables: "literal",
		Panel:     Panel{Width: 60},
	}
}

// Load reads, parses and validates a config file at the given path.
// Fields absent from the file keep their Defaults value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .readability.yml file. It stops at a directory containing .git or at
// the filesystem root. Returns "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

var validate = validator.New()

// Validate checks field values against their allowed sets and ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	field = strings.TrimPrefix(field, "config.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
