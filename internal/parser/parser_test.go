package parser

import (
	"testing"

	"github.com/atikulmunna/logclean/internal/model"
)

func TestPipeParser(t *testing.T) {
	p := NewPipeParser()

	rec, ok := p.Parse("2024-01-01T00:00:00 | info | auth | login ok")
	if !ok {
		t.Fatal("expected line to parse")
	}

	want := model.Record{Timestamp: "2024-01-01T00:00:00", Level: "info", Service: "auth", Message: "login ok"}
	if rec != want {
		t.Errorf("expected %+v, got %+v", want, rec)
	}
}

func TestPipeParserTrimsWhitespace(t *testing.T) {
	p := NewPipeParser()

	rec, ok := p.Parse("   2024-01-01   |WARN|  billing\t|  retrying  \r\n")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if rec.Timestamp != "2024-01-01" {
		t.Errorf("expected timestamp '2024-01-01', got %q", rec.Timestamp)
	}
	if rec.Level != "WARN" {
		t.Errorf("expected level WARN, got %q", rec.Level)
	}
	if rec.Service != "billing" {
		t.Errorf("expected service 'billing', got %q", rec.Service)
	}
	if rec.Message != "retrying" {
		t.Errorf("expected message 'retrying', got %q", rec.Message)
	}
}

func TestPipeParserLevelNotValidated(t *testing.T) {
	p := NewPipeParser()

	// Level content is the validator's job.
	rec, ok := p.Parse("t | DEBUG | svc | msg")
	if !ok {
		t.Fatal("expected parser to accept any level content")
	}
	if rec.Level != "DEBUG" {
		t.Errorf("expected level passed through as DEBUG, got %q", rec.Level)
	}
}

func TestPipeParserEmptyFields(t *testing.T) {
	p := NewPipeParser()

	rec, ok := p.Parse("t | INFO | svc |")
	if !ok {
		t.Fatal("expected four fields with an empty message to parse")
	}
	if rec.Message != "" {
		t.Errorf("expected empty message, got %q", rec.Message)
	}
}

func TestPipeParserRejects(t *testing.T) {
	p := NewPipeParser()

	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace only", "   \t  "},
		{"no delimiter", "bad line no delimiter"},
		{"three fields", "t | INFO | svc"},
		{"five fields", "t | INFO | svc | msg | extra"},
		{"pipe in message", "t | INFO | svc | a|b"},
		{"lone delimiter", "|"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if rec, ok := p.Parse(tc.line); ok {
				t.Errorf("expected rejection for %q, got %+v", tc.line, rec)
			}
		})
	}
}

func TestPipeParserOnlyDelimiters(t *testing.T) {
	p := NewPipeParser()

	rec, ok := p.Parse("|||")
	if !ok {
		t.Fatal("expected '|||' to split into four empty fields")
	}
	if rec != (model.Record{}) {
		t.Errorf("expected all-empty record, got %+v", rec)
	}
}
