package model

// LevelCounts holds the number of accepted records per level.
// Field order fixes the JSON key order: INFO, WARN, ERROR.
type LevelCounts struct {
	Info  int `json:"INFO" yaml:"INFO"`
	Warn  int `json:"WARN" yaml:"WARN"`
	Error int `json:"ERROR" yaml:"ERROR"`
}

// Total returns the sum across all levels.
func (c LevelCounts) Total() int {
	return c.Info + c.Warn + c.Error
}

// ServiceCount is one entry of the top_services ranking.
type ServiceCount struct {
	Service string `json:"service" yaml:"service"`
	Count   int    `json:"count" yaml:"count"`
}

// ErrorCount is one entry of the top_errors ranking.
type ErrorCount struct {
	Message string `json:"message" yaml:"message"`
	Count   int    `json:"count" yaml:"count"`
}

// Summary is the end-of-run snapshot written to summary.json.
// It is built once and never mutated.
type Summary struct {
	TotalLines   int            `json:"total_lines" yaml:"total_lines"`
	ValidLines   int            `json:"valid_lines" yaml:"valid_lines"`
	InvalidLines int            `json:"invalid_lines" yaml:"invalid_lines"`
	Levels       LevelCounts    `json:"levels" yaml:"levels"`
	TopServices  []ServiceCount `json:"top_services" yaml:"top_services"`
	TopErrors    []ErrorCount   `json:"top_errors" yaml:"top_errors"`
}
