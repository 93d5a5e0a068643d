// Package storage archives extraction outcomes in PostgreSQL.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"

	"cv-extract/internal/batch"
	"cv-extract/internal/extraction"
)

// ErrBatchNotFound is returned when no rows exist for a batch id.
var ErrBatchNotFound = errors.New("batch not found")

const schema = `
CREATE TABLE IF NOT EXISTS extraction_results (
    id            BIGSERIAL PRIMARY KEY,
    batch_id      UUID        NOT NULL,
    position      INT         NOT NULL,
    filename      TEXT        NOT NULL,
    full_name     TEXT,
    phone         TEXT,
    email         TEXT,
    experience    TEXT,
    education     TEXT,
    skills        TEXT[],
    skills_found  BOOLEAN     NOT NULL DEFAULT FALSE,
    error_message TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (batch_id, position)
);
CREATE INDEX IF NOT EXISTS idx_extraction_results_email ON extraction_results (email);
`

type DB struct {
	connection *sql.DB
	logger     *zap.Logger
}

func NewDB(dataSourceName string, logger *zap.Logger) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{connection: db, logger: logger}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		db.logger.Error("Error closing the database connection", zap.Error(err))
	}
}

// EnsureSchema creates the archive table when it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.connection.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveBatch stores every outcome of a batch in one transaction.
func (db *DB) SaveBatch(ctx context.Context, batchID uuid.UUID, outcomes []batch.Outcome) error {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO extraction_results
            (batch_id, position, filename, full_name, phone, email, experience, education, skills, skills_found, error_message)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (batch_id, position) DO NOTHING
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range outcomes {
		row := RowFromOutcome(batchID, i, o)
		_, err := stmt.ExecContext(ctx,
			row.BatchID, row.Position, row.Filename,
			row.FullName, row.Phone, row.Email, row.Experience, row.Education,
			pq.Array(row.Skills), row.SkillsFound, row.ErrorMessage,
		)
		if err != nil {
			return fmt.Errorf("failed to save outcome %d (%s): %w", i, o.Filename, err)
		}
	}

	return tx.Commit()
}

// GetBatch loads the outcomes of a batch in their original order.
func (db *DB) GetBatch(ctx context.Context, batchID uuid.UUID) ([]batch.Outcome, error) {
	rows, err := db.connection.QueryContext(ctx, `
        SELECT position, filename, full_name, phone, email, experience, education, skills, skills_found, error_message, created_at
        FROM extraction_results
        WHERE batch_id = $1
        ORDER BY position
    `, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []batch.Outcome
	for rows.Next() {
		r := ResultRow{BatchID: batchID}
		var skills pq.StringArray
		if err := rows.Scan(&r.Position, &r.Filename, &r.FullName, &r.Phone, &r.Email,
			&r.Experience, &r.Education, &skills, &r.SkillsFound, &r.ErrorMessage, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Skills = skills
		out = append(out, r.Outcome())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrBatchNotFound
	}
	return out, nil
}

// ListBatches returns the most recent batches, newest first.
func (db *DB) ListBatches(ctx context.Context, limit int) ([]BatchInfo, error) {
	rows, err := db.connection.QueryContext(ctx, `
        SELECT batch_id, COUNT(*), COUNT(error_message), MIN(created_at)
        FROM extraction_results
        GROUP BY batch_id
        ORDER BY MIN(created_at) DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []BatchInfo{}
	for rows.Next() {
		var b BatchInfo
		if err := rows.Scan(&b.BatchID, &b.Documents, &b.Failed, &b.CreatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// RowFromOutcome maps an outcome onto archive columns.
func RowFromOutcome(batchID uuid.UUID, position int, o batch.Outcome) ResultRow {
	row := ResultRow{
		BatchID:  batchID,
		Position: position,
		Filename: o.Filename,
	}
	if !o.OK() {
		row.ErrorMessage = sql.NullString{String: o.Err, Valid: true}
		return row
	}

	p := o.Profile
	row.FullName = nullField(p.FullName)
	row.Phone = nullField(p.Contact.Phone)
	row.Email = nullField(p.Contact.Email)
	row.Experience = nullField(p.Experience)
	row.Education = nullField(p.Education)
	if p.Skills.Found {
		row.Skills = append([]string{}, p.Skills.Items...)
		row.SkillsFound = true
	}
	return row
}

// Outcome rebuilds the batch outcome stored in the row.
func (r ResultRow) Outcome() batch.Outcome {
	if r.ErrorMessage.Valid {
		return batch.Failure(r.Filename, r.ErrorMessage.String)
	}

	profile := extraction.CandidateProfile{
		FullName: fieldOf(r.FullName),
		Contact: extraction.ContactInfo{
			Phone: fieldOf(r.Phone),
			Email: fieldOf(r.Email),
		},
		Experience: fieldOf(r.Experience),
		Education:  fieldOf(r.Education),
	}
	if r.SkillsFound {
		profile.Skills = extraction.SkillList{Items: append([]string{}, r.Skills...), Found: true}
	}
	return batch.Success(r.Filename, profile)
}

func nullField(f extraction.Field) sql.NullString {
	return sql.NullString{String: f.Value, Valid: f.Found}
}

func fieldOf(s sql.NullString) extraction.Field {
	if !s.Valid {
		return extraction.Missing
	}
	return extraction.Found(s.String)
}
