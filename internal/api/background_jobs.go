package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cv-extract/internal/batch"
)

// ArchiveJob represents a background archiving task for one batch
type ArchiveJob struct {
	BatchID   uuid.UUID
	Outcomes  []batch.Outcome
	Timestamp time.Time
}

const archiveTimeout = 30 * time.Second

// StartBackgroundWorkers initializes background job workers
func (a *API) StartBackgroundWorkers() {
	a.workers.Add(1)
	go func() {
		defer a.workers.Done()
		a.archiveWorker()
	}()

	a.logger.Info("[BackgroundJobs] Workers started (archive)")
}

// Close stops accepting archive jobs and waits for queued ones to finish.
func (a *API) Close() {
	if a.archiveQueue == nil {
		return
	}
	close(a.archiveQueue)
	a.workers.Wait()
}

// archiveWorker persists batches from the queue
func (a *API) archiveWorker() {
	log := a.logger.With(zap.String("worker", "ArchiveWorker"))
	log.Info("[ArchiveWorker] Started")

	for job := range a.archiveQueue {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		err := a.archive.SaveBatch(ctx, job.BatchID, job.Outcomes)
		cancel()

		if err != nil {
			log.Error("[ArchiveWorker] Failed to archive batch",
				zap.Stringer("batch_id", job.BatchID), zap.Error(err))
			continue
		}

		succeeded, failed := batch.Summary(job.Outcomes)
		log.Info("[ArchiveWorker] Batch archived",
			zap.Stringer("batch_id", job.BatchID),
			zap.Int("succeeded", succeeded),
			zap.Int("failed", failed),
			zap.Duration("took", time.Since(job.Timestamp)),
		)
	}
}

// queueArchiveJob adds a batch to the archive queue without blocking the request
func (a *API) queueArchiveJob(batchID uuid.UUID, outcomes []batch.Outcome) {
	if a.archiveQueue == nil {
		return
	}

	job := ArchiveJob{
		BatchID:   batchID,
		Outcomes:  outcomes,
		Timestamp: time.Now(),
	}

	// Non-blocking send
	select {
	case a.archiveQueue <- job:
		a.logger.Debug("[BackgroundJobs] Queued archive job", zap.Stringer("batch_id", batchID))
	default:
		a.logger.Warn("[BackgroundJobs] Queue full! Dropping archive job", zap.Stringer("batch_id", batchID))
	}
}
