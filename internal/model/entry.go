package model

import "strings"

// Allowed severity levels. Anything else is rejected by the validator.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Delimiter separates the four fields of a log line.
const Delimiter = "|"

// RawLine is a single line of input text, read once and discarded after parsing.
type RawLine struct {
	Text string
}

// Record is one parsed log line. Fields map positionally to
// timestamp | level | service | message.
type Record struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// String returns the canonical clean-line form:
// "timestamp | LEVEL | service | message"
func (r Record) String() string {
	return strings.Join([]string{r.Timestamp, r.Level, r.Service, r.Message}, " "+Delimiter+" ")
}
