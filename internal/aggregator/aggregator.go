package aggregator

import (
	"github.com/atikulmunna/logclean/internal/model"
)

// DefaultTopN is the length of the top_services and top_errors rankings.
const DefaultTopN = 3

// State accumulates counts for a single pass over one input.
// It is built fresh per run and is not safe for concurrent use.
type State struct {
	topN         int
	totalLines   int
	validLines   int
	invalidLines int
	levels       model.LevelCounts
	services     *Counter
	errors       *Counter // messages of ERROR records only
	cleanLines   []string
}

// New creates an empty State whose rankings hold at most topN entries.
// A non-positive topN falls back to DefaultTopN.
func New(topN int) *State {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &State{
		topN:     topN,
		services: NewCounter(),
		errors:   NewCounter(),
	}
}

// Reject records a line that failed parsing or validation.
func (s *State) Reject() {
	s.totalLines++
	s.invalidLines++
}

// Accept records a validated record. The level must already be normalized.
func (s *State) Accept(rec model.Record) {
	s.totalLines++
	s.validLines++

	switch rec.Level {
	case model.LevelInfo:
		s.levels.Info++
	case model.LevelWarn:
		s.levels.Warn++
	case model.LevelError:
		s.levels.Error++
		s.errors.Add(rec.Message)
	}

	s.services.Add(rec.Service)
	s.cleanLines = append(s.cleanLines, rec.String())
}

// TotalLines returns the number of lines seen so far.
func (s *State) TotalLines() int { return s.totalLines }

// ValidLines returns the number of accepted lines so far.
func (s *State) ValidLines() int { return s.validLines }

// InvalidLines returns the number of rejected lines so far.
func (s *State) InvalidLines() int { return s.invalidLines }

// CleanLines returns the accepted lines in encounter order.
// The returned slice must not be modified.
func (s *State) CleanLines() []string {
	return s.cleanLines
}

// Summary builds the end-of-run snapshot. Rankings are never nil so they
// encode as [] rather than null.
func (s *State) Summary() model.Summary {
	topServices := make([]model.ServiceCount, 0, s.topN)
	for _, e := range s.services.Top(s.topN) {
		topServices = append(topServices, model.ServiceCount{Service: e.Key, Count: e.Count})
	}

	topErrors := make([]model.ErrorCount, 0, s.topN)
	for _, e := range s.errors.Top(s.topN) {
		topErrors = append(topErrors, model.ErrorCount{Message: e.Key, Count: e.Count})
	}

	return model.Summary{
		TotalLines:   s.totalLines,
		ValidLines:   s.validLines,
		InvalidLines: s.invalidLines,
		Levels:       s.levels,
		TopServices:  topServices,
		TopErrors:    topErrors,
	}
}
