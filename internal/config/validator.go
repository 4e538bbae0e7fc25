package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aleister1102/urlclean"
)

// ValidateConfig performs validation on the Config structure.
func ValidateConfig(cfg *Config) error {
	validate := validator.New()

	// Register custom validation for tracking parameter categories
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, err := urlclean.ParseCategory(fl.Field().String())
		return err == nil
	})

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		var messages []string
		for _, e := range errs {
			msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
			if e.Param() != "" {
				msg += fmt.Sprintf(" (expected: %s)", e.Param())
			}
			if e.Value() != nil && e.Value() != "" {
				msg += fmt.Sprintf(", actual: '%v'", e.Value())
			}
			messages = append(messages, msg)
		}
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return fmt.Errorf("configuration validation error: %w", err)
}

// RemovalSet builds the removal set the cleaner config describes: the
// selected categories (or the whole database when none are named)
// unioned with the custom parameter names.
func RemovalSet(cfg CleanerConfig) (map[string]bool, error) {
	var removing map[string]bool

	if len(cfg.Categories) == 0 {
		removing = urlclean.AllParameters()
	} else {
		categories := make([]urlclean.Category, 0, len(cfg.Categories))
		for _, name := range cfg.Categories {
			category, err := urlclean.ParseCategory(name)
			if err != nil {
				return nil, err
			}
			categories = append(categories, category)
		}
		removing = urlclean.Parameters(categories...)
	}

	for _, name := range cfg.CustomParams {
		removing[strings.ToLower(name)] = true
	}
	return removing, nil
}
