package storage

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cv-extract/internal/batch"
	"cv-extract/internal/extraction"
)

func TestRowFromOutcome_Success(t *testing.T) {
	id := uuid.New()
	profile := extraction.CandidateProfile{
		FullName: extraction.Found("Jane Doe"),
		Contact: extraction.ContactInfo{
			Email: extraction.Found("jane@example.com"),
		},
		Skills: extraction.SkillList{Items: []string{}, Found: true},
	}

	row := RowFromOutcome(id, 3, batch.Success("jane.pdf", profile))

	assert.Equal(t, id, row.BatchID)
	assert.Equal(t, 3, row.Position)
	assert.Equal(t, sql.NullString{String: "Jane Doe", Valid: true}, row.FullName)
	assert.False(t, row.Phone.Valid, "missing phone is stored as NULL")
	assert.True(t, row.SkillsFound)
	assert.NotNil(t, row.Skills, "an empty section is stored as an empty array, not NULL")
	assert.False(t, row.ErrorMessage.Valid)

	assert.Equal(t, batch.Success("jane.pdf", profile), row.Outcome())
}

func TestRowFromOutcome_Failure(t *testing.T) {
	row := RowFromOutcome(uuid.New(), 0, batch.Failure("x.png", "unsupported file type"))

	assert.Equal(t, sql.NullString{String: "unsupported file type", Valid: true}, row.ErrorMessage)
	assert.False(t, row.FullName.Valid)
	assert.Nil(t, row.Skills)
	assert.Equal(t, batch.Failure("x.png", "unsupported file type"), row.Outcome())
}

func TestResultRow_MissingSkillsSection(t *testing.T) {
	out := ResultRow{Filename: "a.txt"}.Outcome()

	assert.True(t, out.OK())
	assert.False(t, out.Profile.Skills.Found)
	assert.Equal(t, extraction.Missing, out.Profile.FullName)
}

func TestNewDB_Unreachable(t *testing.T) {
	db, err := NewDB("postgres://archive@127.0.0.1:1/archive?sslmode=disable&connect_timeout=2", nil)
	assert.Error(t, err)
	assert.Nil(t, db)
}
