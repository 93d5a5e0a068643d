package storage

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ResultRow is one archived extraction outcome. Nullable columns are NULL when the
// field was not found; skills_found separates a missing section from an empty one.
type ResultRow struct {
	BatchID      uuid.UUID
	Position     int
	Filename     string
	FullName     sql.NullString
	Phone        sql.NullString
	Email        sql.NullString
	Experience   sql.NullString
	Education    sql.NullString
	Skills       []string
	SkillsFound  bool
	ErrorMessage sql.NullString
	CreatedAt    time.Time
}

// BatchInfo summarizes an archived batch.
type BatchInfo struct {
	BatchID   uuid.UUID `json:"batch_id"`
	Documents int       `json:"documents"`
	Failed    int       `json:"failed"`
	CreatedAt time.Time `json:"created_at"`
}
