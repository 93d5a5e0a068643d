// Package extraction turns decoded resume text into a CandidateProfile using layered
// pattern matching. Every field is extracted independently and degrades to a
// not-found value on its own; only blank input fails the whole document.
package extraction

import (
	"strings"
	"time"
)

// Extractor composes the field extractors. It holds no mutable state and is safe for
// concurrent use.
type Extractor struct {
	months *MonthTable
	now    func() time.Time
}

type Option func(*Extractor)

// WithMonths replaces the month-name table used to read date ranges.
func WithMonths(months *MonthTable) Option {
	return func(e *Extractor) {
		e.months = months
	}
}

// WithClock sets the reference time experience is measured against.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		months: EnglishMonths(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds the profile for one document. It fails only with
// *EmptyDocumentError when text is blank.
func (e *Extractor) Extract(text string) (CandidateProfile, error) {
	if strings.TrimSpace(text) == "" {
		return CandidateProfile{}, &EmptyDocumentError{}
	}

	return CandidateProfile{
		FullName:   ExtractName(text),
		Contact:    ExtractContact(text),
		Experience: EstimateExperience(text, e.months, e.now()),
		Education:  ExtractEducation(text),
		Skills:     ExtractSkills(text),
	}, nil
}
