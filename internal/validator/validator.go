// Package validator decides whether a parsed record is acceptable and
// normalizes the fields that have a canonical form.
package validator

import (
	"strings"

	"github.com/atikulmunna/logclean/internal/model"
)

var allowedLevels = map[string]bool{
	model.LevelInfo:  true,
	model.LevelWarn:  true,
	model.LevelError: true,
}

// NormalizeLevel returns the level in its canonical uppercase form.
func NormalizeLevel(level string) string {
	return strings.ToUpper(level)
}

// IsAllowed reports whether an already-normalized level is accepted.
func IsAllowed(level string) bool {
	return allowedLevels[level]
}

// Validate normalizes the record's level and accepts it only when the level
// is INFO, WARN or ERROR. The other fields are returned unchanged.
// It has no side effects; counting is left to the caller.
func Validate(rec model.Record) (model.Record, bool) {
	rec.Level = NormalizeLevel(rec.Level)
	if !IsAllowed(rec.Level) {
		return model.Record{}, false
	}
	return rec, true
}
