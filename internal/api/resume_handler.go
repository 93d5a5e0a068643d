package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cv-extract/internal/batch"
	"cv-extract/internal/cv"
	"cv-extract/internal/storage"
)

// TextDocument is a document whose text was already extracted by the caller.
type TextDocument struct {
	Identifier string `json:"identifier" validate:"required"`
	Text       string `json:"text"`
}

// ExtractRequest is the body of the text extraction endpoint.
type ExtractRequest struct {
	Documents []TextDocument `json:"documents" validate:"required,min=1,max=100,dive"`
}

// ResumeUploadHandler parses uploaded resumes and extracts candidate profiles
// @Summary Upload and parse resumes
// @Description Upload PDF/DOCX/TXT resumes and extract name, contact info, experience, education and skills. Each file yields either parsedData or an error, in upload order.
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Resume files (PDF, DOCX or TXT)"
// @Success 200 {array} batch.Outcome
// @Header 200 {string} X-Batch-ID "Batch identifier"
// @Failure 400 {object} map[string]string
// @Router /resumes/upload [post]
func (a *API) ResumeUploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Form limit plus a little room for multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, a.opts.MaxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(a.opts.MaxUploadBytes); err != nil {
		a.writeError(w, http.StatusBadRequest, fmt.Sprintf("file too large or invalid (max %dMB)", a.opts.MaxUploadBytes>>20))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		a.writeError(w, http.StatusBadRequest, "No files uploaded.")
		return
	}
	if len(headers) > a.opts.MaxUploadFiles {
		a.writeError(w, http.StatusBadRequest, fmt.Sprintf("too many files (max %d)", a.opts.MaxUploadFiles))
		return
	}

	sources := make([]cv.Source, len(headers))
	for i, fh := range headers {
		sources[i] = uploadSource(fh)
	}

	docs := a.cvParser.Documents(sources, a.logger)
	a.respondWithOutcomes(w, docs, startTime)
}

// ExtractTextHandler extracts candidate profiles from already decoded text
// @Summary Extract profiles from text
// @Description Run field extraction over plain-text documents. Blank documents fail individually.
// @Tags resumes
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Documents"
// @Success 200 {array} batch.Outcome
// @Header 200 {string} X-Batch-ID "Batch identifier"
// @Failure 400 {object} map[string]string
// @Router /resumes/extract [post]
func (a *API) ExtractTextHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	var req ExtractRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, a.opts.MaxUploadBytes)).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	docs := make([]batch.Document, len(req.Documents))
	for i, d := range req.Documents {
		docs[i] = batch.Document{ID: d.Identifier, Text: d.Text}
	}
	a.respondWithOutcomes(w, docs, startTime)
}

// GetBatchHandler returns the archived outcomes of a batch
// @Summary Get archived batch
// @Description Get the outcomes of a previously processed batch
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {array} batch.Outcome
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /batches/{id} [get]
func (a *API) GetBatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.archive == nil {
		a.writeError(w, http.StatusServiceUnavailable, "result archive is not configured")
		return
	}

	batchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	outcomes, err := a.archive.GetBatch(r.Context(), batchID)
	if errors.Is(err, storage.ErrBatchNotFound) {
		a.writeError(w, http.StatusNotFound, "batch not found")
		return
	}
	if err != nil {
		a.logger.Error("Failed to load batch", zap.Stringer("batch_id", batchID), zap.Error(err))
		a.writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	a.writeJSON(w, http.StatusOK, outcomes)
}

// ListBatchesHandler lists recently archived batches
// @Summary List archived batches
// @Tags batches
// @Produce json
// @Param limit query int false "Limit results" default(20)
// @Success 200 {array} storage.BatchInfo
// @Failure 503 {object} map[string]string
// @Router /batches [get]
func (a *API) ListBatchesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.archive == nil {
		a.writeError(w, http.StatusServiceUnavailable, "result archive is not configured")
		return
	}

	// Default limit
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			a.writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	batches, err := a.archive.ListBatches(r.Context(), limit)
	if err != nil {
		a.logger.Error("Failed to list batches", zap.Error(err))
		a.writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	a.writeJSON(w, http.StatusOK, batches)
}

func (a *API) respondWithOutcomes(w http.ResponseWriter, docs []batch.Document, startTime time.Time) {
	outcomes := a.orchestrator.Run(docs)
	batchID := uuid.New()

	succeeded, failed := batch.Summary(outcomes)
	a.logger.Info("Batch processed",
		zap.Stringer("batch_id", batchID),
		zap.Int("documents", len(outcomes)),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", failed),
		zap.Int64("processing_time_ms", time.Since(startTime).Milliseconds()),
	)

	a.queueArchiveJob(batchID, outcomes)

	w.Header().Set("X-Batch-ID", batchID.String())
	a.writeJSON(w, http.StatusOK, outcomes)
}

func uploadSource(fh *multipart.FileHeader) cv.Source {
	return cv.Source{
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
