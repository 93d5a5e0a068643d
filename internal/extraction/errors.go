package extraction

// EmptyDocumentError is returned when a document has no text left after trimming.
// It is a document-level failure, unlike the per-field not-found values.
type EmptyDocumentError struct{}

func (e *EmptyDocumentError) Error() string {
	return "no text extracted from the resume"
}
