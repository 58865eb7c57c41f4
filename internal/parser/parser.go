package parser

import (
	"strings"

	"github.com/atikulmunna/logclean/internal/model"
)

// fieldCount is the number of fields every log line must split into.
const fieldCount = 4

// Parser converts a raw log line into a candidate Record.
// The boolean result is false when the line does not have the expected shape.
type Parser interface {
	Parse(raw string) (model.Record, bool)
}

// ---------------------------------------------------------------------------
// Pipe Parser
// ---------------------------------------------------------------------------

// PipeParser handles "timestamp | level | service | message" lines.
// It only checks the shape of the line; field content is left to the validator.
type PipeParser struct{}

func NewPipeParser() *PipeParser { return &PipeParser{} }

func (p *PipeParser) Parse(raw string) (model.Record, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return model.Record{}, false
	}

	parts := strings.Split(line, model.Delimiter)
	if len(parts) != fieldCount {
		return model.Record{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return model.Record{
		Timestamp: parts[0],
		Level:     parts[1],
		Service:   parts[2],
		Message:   parts[3],
	}, true
}
