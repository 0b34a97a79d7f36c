package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/typesprint/internal/model"
)

var validate = validator.New()

// Merge copies file values into cfg for every field the caller did not set explicitly.
// isSet reports whether a setting was given on the command line.
func Merge(cfg *model.Config, file FileConfig, isSet func(name string) bool) {
	s := file.Session
	mergeValue(isSet, "duration", &cfg.Duration, s.Duration)
	mergeValue(isSet, "text", &cfg.Text, s.Text)
	mergeValue(isSet, "text-file", &cfg.TextFile, s.TextFile)
	mergeValue(isSet, "text-name", &cfg.TextName, s.TextName)
	mergeValue(isSet, "random-text", &cfg.RandomText, s.RandomText)
	mergeValue(isSet, "wordlist", &cfg.WordList, s.WordList)
	mergeValue(isSet, "lang", &cfg.Lang, s.Lang)
	mergeValue(isSet, "words", &cfg.Words, s.Words)
	mergeValue(isSet, "caps", &cfg.CapsPct, s.CapsPct)
	mergeValue(isSet, "log-level", &cfg.LogLevel, file.Log.Level)
	mergeValue(isSet, "log-file", &cfg.LogFile, file.Log.File)
}

func mergeValue[T any](isSet func(string) bool, name string, target, value *T) {
	if value == nil {
		return
	}
	if isSet != nil && isSet(name) {
		return
	}
	*target = *value
}

// Defaults returns a Config holding the default of every setting.
// Callers seed flags with it so that explicit zero values still reach validation.
func Defaults() model.Config {
	var cfg model.Config
	defaults.MustSet(&cfg)
	cfg.LogFile = DefaultLogPath()
	return cfg
}

// Finalize normalizes and validates the merged settings.
// An empty log file falls back to the default path; every other value is checked as given.
func Finalize(cfg *model.Config) error {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogPath()
	}
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.Newf("invalid %s: %s", settingName(verrs[0].Field()), describe(verrs[0]))
		}
		return errors.Wrap(err, "config validation failed")
	}
	return nil
}

func settingName(field string) string {
	switch field {
	case "Duration":
		return "duration"
	case "Words":
		return "words"
	case "CapsPct":
		return "caps"
	case "LogLevel":
		return "log-level"
	default:
		return strings.ToLower(field)
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "gte":
		return "must be >= " + fe.Param()
	case "max", "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag() + " check"
	}
}
