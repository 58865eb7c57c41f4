// Package pipeline runs the parse → validate → aggregate pass over one input
// and publishes the clean log and the JSON summary.
package pipeline

import (
	"fmt"
	"io"

	"github.com/atikulmunna/logclean/internal/aggregator"
	"github.com/atikulmunna/logclean/internal/model"
	"github.com/atikulmunna/logclean/internal/output"
	"github.com/atikulmunna/logclean/internal/parser"
	"github.com/atikulmunna/logclean/internal/source"
	"github.com/atikulmunna/logclean/internal/validator"
)

// ErrInputUnavailable is returned when the input cannot be opened at all.
var ErrInputUnavailable = source.ErrInputUnavailable

// Options names the files of one run.
type Options struct {
	Input      string // resolved input path
	CleanOut   string
	SummaryOut string
	TopN       int
}

// Pipeline wires a parser to the validator and a fresh aggregator per run.
type Pipeline struct {
	parser parser.Parser
	topN   int
}

// New creates a Pipeline using the pipe-delimited parser.
func New(topN int) *Pipeline {
	return &Pipeline{parser: parser.NewPipeParser(), topN: topN}
}

// Step feeds one raw line through parse, validate and aggregate.
// Rejections are folded into the invalid counter, never returned.
func (p *Pipeline) Step(state *aggregator.State, raw model.RawLine) {
	rec, ok := p.parser.Parse(raw.Text)
	if !ok {
		state.Reject()
		return
	}
	rec, ok = validator.Validate(rec)
	if !ok {
		state.Reject()
		return
	}
	state.Accept(rec)
}

// Process consumes r line by line and returns the accumulated state.
// Only a failure of the reader itself produces an error.
func (p *Pipeline) Process(r io.Reader) (*aggregator.State, error) {
	state := aggregator.New(p.topN)

	err := readLines(r, func(line string) {
		p.Step(state, model.RawLine{Text: line})
	})
	if err != nil {
		return nil, fmt.Errorf("reading input after line %d: %w", state.TotalLines(), err)
	}
	return state, nil
}

// Run processes opts.Input and writes both artifacts. Nothing is written
// when the input cannot be opened or read.
func Run(opts Options) (model.Summary, error) {
	f, err := source.Open(opts.Input)
	if err != nil {
		return model.Summary{}, err
	}
	defer f.Close()

	state, err := New(opts.TopN).Process(f)
	if err != nil {
		return model.Summary{}, err
	}

	if err := output.WriteCleanLines(opts.CleanOut, state.CleanLines()); err != nil {
		return model.Summary{}, err
	}

	sum := state.Summary()
	if err := output.WriteSummary(opts.SummaryOut, sum); err != nil {
		return model.Summary{}, err
	}
	return sum, nil
}
