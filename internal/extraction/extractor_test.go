package extraction

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Email: jane.doe@example.com Phone: 555-123-4567

Experience
Software Engineer, Acme Corp, Jan 2019 - Present
Intern, Beta Inc, Jun 2018 - Dec 2018

Education
Bachelor's in Computer Science, 2018

Skills: Python, English, 2020, Java`

func fixedClock() time.Time {
	return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor(WithClock(fixedClock))

	profile, err := e.Extract(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, Found("Jane Doe"), profile.FullName)
	assert.Equal(t, Found("555-123-4567"), profile.Contact.Phone)
	assert.Equal(t, Found("jane.doe@example.com"), profile.Contact.Email)
	assert.Equal(t, Found("6.00 years"), profile.Experience)
	assert.Equal(t, Found("Bachelor's in Computer Science"), profile.Education)
	assert.Equal(t, SkillList{Items: []string{"Python", "Java"}, Found: true}, profile.Skills)
}

func TestExtractor_EmptyDocument(t *testing.T) {
	e := NewExtractor()

	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, err := e.Extract(text)

		var emptyErr *EmptyDocumentError
		assert.True(t, errors.As(err, &emptyErr), "text %q", text)
	}
}

func TestExtractor_Idempotent(t *testing.T) {
	e := NewExtractor(WithClock(fixedClock))

	first, err := e.Extract(sampleResume)
	require.NoError(t, err)
	second, err := e.Extract(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractor_WithMonths(t *testing.T) {
	german := NewMonthTable(map[string]int{"juni": 5, "januar": 0})
	e := NewExtractor(WithMonths(german), WithClock(fixedClock))

	profile, err := e.Extract("Entwickler Juni 2022 - Present")
	require.NoError(t, err)

	// June 2022 to June 2024.
	assert.Equal(t, Found("2.00 years"), profile.Experience)
}

func TestCandidateProfile_MarshalJSON(t *testing.T) {
	e := NewExtractor(WithClock(fixedClock))
	profile, err := e.Extract(sampleResume)
	require.NoError(t, err)

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"fullName": "Jane Doe",
		"contactInfo": {"phone": "555-123-4567", "email": "jane.doe@example.com"},
		"experience": "6.00 years",
		"mostRecentEducation": "Bachelor's in Computer Science",
		"skills": ["Python", "Java"]
	}`, string(data))
}

func TestCandidateProfile_MarshalJSON_Sentinels(t *testing.T) {
	data, err := json.Marshal(CandidateProfile{})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"fullName": "Name not found",
		"contactInfo": {"phone": "Phone not found", "email": "Email not found"},
		"experience": "Experience not found",
		"mostRecentEducation": "Education not found",
		"skills": "Skills not found"
	}`, string(data))
}

func TestExtractor_NoEmptyFields(t *testing.T) {
	e := NewExtractor(WithClock(fixedClock))

	for _, text := range []string{"x", "12345", "lowercase words only", sampleResume, "Skills:\n\n"} {
		profile, err := e.Extract(text)
		require.NoError(t, err)

		data, err := json.Marshal(profile)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))

		for _, key := range []string{"fullName", "experience", "mostRecentEducation"} {
			assert.NotEmpty(t, out[key], "%s in %q", key, text)
		}
		contact := out["contactInfo"].(map[string]any)
		assert.NotEmpty(t, contact["phone"], text)
		assert.NotEmpty(t, contact["email"], text)
		assert.NotNil(t, out["skills"], text)
	}
}
