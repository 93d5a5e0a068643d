package cv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// ErrUnsupportedFileType is returned for anything other than PDF, DOCX or plain text.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// DecodeError reports a document that could not be turned into text.
type DecodeError struct {
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Filename, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Converter turns a PDF or DOCX stream into plain text.
type Converter func(r io.Reader, mimeType string) (string, error)

// DocconvConverter decodes through code.sajari.com/docconv.
func DocconvConverter(r io.Reader, mimeType string) (string, error) {
	res, err := docconv.Convert(r, mimeType, false)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}

type CVParser struct {
	convert Converter
}

// ParsedCV is the decoded text of one uploaded file.
type ParsedCV struct {
	Filename string
	FileType string
	FileSize int64
	FullText string
}

func NewCVParser(convert Converter) *CVParser {
	if convert == nil {
		convert = DocconvConverter
	}
	return &CVParser{
		convert: convert,
	}
}

// ParseFile extracts text from PDF/DOCX/TXT content. The declared MIME type wins;
// when it is missing or generic the file extension decides.
func (p *CVParser) ParseFile(filename, mimeType string, reader io.Reader) (*ParsedCV, error) {
	fileType := ResolveMimeType(filename, mimeType)

	var buf bytes.Buffer
	size, err := io.Copy(&buf, reader)
	if err != nil {
		return nil, &DecodeError{Filename: filename, Err: fmt.Errorf("failed to read file: %w", err)}
	}

	var text string
	switch fileType {
	case MimePDF, MimeDOCX:
		text, err = p.convert(&buf, fileType)
		if err != nil {
			return nil, &DecodeError{Filename: filename, Err: fmt.Errorf("failed to parse document: %w", err)}
		}
	case MimePlain:
		text = buf.String()
	default:
		return nil, &DecodeError{Filename: filename, Err: fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileType)}
	}

	return &ParsedCV{
		Filename: filename,
		FileType: fileType,
		FileSize: size,
		FullText: text,
	}, nil
}

// ResolveMimeType normalizes a declared content type and falls back to the extension.
func ResolveMimeType(filename, declared string) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
			return mediaType
		}
	}
	if strings.EqualFold(filepath.Ext(filename), ".txt") {
		return MimePlain
	}
	return docconv.MimeTypeByExtension(filename)
}
