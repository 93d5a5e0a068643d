package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cv-extract/internal/batch"
	"cv-extract/internal/cv"
	"cv-extract/internal/storage"
)

// Archive persists batch outcomes. *storage.DB implements it.
type Archive interface {
	SaveBatch(ctx context.Context, batchID uuid.UUID, outcomes []batch.Outcome) error
	GetBatch(ctx context.Context, batchID uuid.UUID) ([]batch.Outcome, error)
	ListBatches(ctx context.Context, limit int) ([]storage.BatchInfo, error)
}

type Options struct {
	MaxUploadBytes int64
	MaxUploadFiles int
	QueueSize      int
}

type API struct {
	orchestrator *batch.Orchestrator
	cvParser     *cv.CVParser
	archive      Archive // nil when archiving is disabled
	logger       *zap.Logger
	validate     *validator.Validate
	opts         Options

	archiveQueue chan ArchiveJob // Background queue for async result archiving
	workers      sync.WaitGroup
}

func NewAPI(orchestrator *batch.Orchestrator, cvParser *cv.CVParser, archive Archive, logger *zap.Logger, opts Options) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.MaxUploadFiles <= 0 {
		opts.MaxUploadFiles = 10
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 50
	}

	a := &API{
		orchestrator: orchestrator,
		cvParser:     cvParser,
		archive:      archive,
		logger:       logger,
		validate:     validator.New(),
		opts:         opts,
	}

	if archive != nil {
		a.archiveQueue = make(chan ArchiveJob, opts.QueueSize)
		a.StartBackgroundWorkers()
	}

	return a
}

// writeJSON encodes v with the given status code.
func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, map[string]string{"error": message})
}
