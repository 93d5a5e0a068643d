// Package batch runs the field extractor over many documents with per-document
// failure isolation. Results keep the input order.
package batch

import (
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cv-extract/internal/extraction"
)

// Document is one decoded input. Err carries a failure from the decoding step,
// in which case Text is ignored.
type Document struct {
	ID   string
	Text string
	Err  error
}

// Outcome is Success when Profile is set and Failure otherwise.
type Outcome struct {
	Filename string
	Profile  *extraction.CandidateProfile
	Err      string
}

func Success(filename string, profile extraction.CandidateProfile) Outcome {
	return Outcome{Filename: filename, Profile: &profile}
}

func Failure(filename string, message string) Outcome {
	return Outcome{Filename: filename, Err: message}
}

func (o Outcome) OK() bool {
	return o.Profile != nil
}

type outcomeJSON struct {
	Filename   string                       `json:"filename"`
	ParsedData *extraction.CandidateProfile `json:"parsedData,omitempty"`
	Error      string                       `json:"error,omitempty"`
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(outcomeJSON{
		Filename:   o.Filename,
		ParsedData: o.Profile,
		Error:      o.Err,
	})
}

// Orchestrator fans documents out to a bounded number of workers.
type Orchestrator struct {
	extractor *extraction.Extractor
	workers   int
	logger    *zap.Logger
}

func NewOrchestrator(extractor *extraction.Extractor, workers int, logger *zap.Logger) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		extractor: extractor,
		workers:   workers,
		logger:    logger,
	}
}

// Run returns exactly one Outcome per document, in input order. A failing document
// never affects its siblings.
func (o *Orchestrator) Run(docs []Document) []Outcome {
	results := make([]Outcome, len(docs))

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, doc := range docs {
		g.Go(func() error {
			results[i] = o.process(doc)
			return nil
		})
	}
	// Workers never return errors; failures are recorded in their slot.
	_ = g.Wait()

	return results
}

func (o *Orchestrator) process(doc Document) Outcome {
	if doc.Err != nil {
		o.logger.Warn("document decode failed", zap.String("filename", doc.ID), zap.Error(doc.Err))
		return Failure(doc.ID, doc.Err.Error())
	}

	profile, err := o.extractor.Extract(doc.Text)
	if err != nil {
		o.logger.Warn("document extraction failed", zap.String("filename", doc.ID), zap.Error(err))
		return Failure(doc.ID, err.Error())
	}

	o.logger.Debug("document extracted", zap.String("filename", doc.ID), zap.Int("skills", len(profile.Skills.Items)))
	return Success(doc.ID, profile)
}

// Summary counts successes and failures.
func Summary(outcomes []Outcome) (succeeded, failed int) {
	for _, o := range outcomes {
		if o.OK() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
