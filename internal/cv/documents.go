// Package cv decodes uploaded resume files into plain text for extraction.
package cv

import (
	"io"

	"go.uber.org/zap"

	"cv-extract/internal/batch"
)

// Source is a file waiting to be decoded.
type Source struct {
	Filename string
	MimeType string
	Open     func() (io.ReadCloser, error)
}

// Documents decodes every source. A file that cannot be opened or decoded becomes a
// document carrying its error, so the batch still reports it in position.
func (p *CVParser) Documents(sources []Source, logger *zap.Logger) []batch.Document {
	if logger == nil {
		logger = zap.NewNop()
	}

	docs := make([]batch.Document, len(sources))
	for i, src := range sources {
		docs[i] = batch.Document{ID: src.Filename}

		parsed, err := p.parseSource(src)
		if err != nil {
			docs[i].Err = err
			continue
		}

		logger.Info("CV parsed",
			zap.String("filename", parsed.Filename),
			zap.String("file_type", parsed.FileType),
			zap.Int64("file_size", parsed.FileSize),
			zap.Int("text_length", len(parsed.FullText)),
		)
		docs[i].Text = parsed.FullText
	}
	return docs
}

func (p *CVParser) parseSource(src Source) (*ParsedCV, error) {
	r, err := src.Open()
	if err != nil {
		return nil, &DecodeError{Filename: src.Filename, Err: err}
	}
	defer r.Close()

	return p.ParseFile(src.Filename, src.MimeType, r)
}
