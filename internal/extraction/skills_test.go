package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_FiltersLanguagesAndYears(t *testing.T) {
	got := ExtractSkills("Skills: Python, English, 2020, Java")

	assert.Equal(t, SkillList{Items: []string{"Python", "Java"}, Found: true}, got)
}

func TestExtractSkills_BulletedSectionEndsAtBlankLine(t *testing.T) {
	text := "Technical Skills:\n• Go\n• Docker, Kubernetes\n• 5 years of Python\n\nExperience\nAcme, Lead"

	got := ExtractSkills(text)

	require.True(t, got.Found)
	assert.Equal(t, []string{"Go", "Docker", "Kubernetes"}, got.Items)
}

func TestExtractSkills_NotFound(t *testing.T) {
	got := ExtractSkills("Experience\nAcme Corp")

	assert.False(t, got.Found)
	assert.Empty(t, got.Items)
}

func TestExtractSkills_SectionFilteredToNothing(t *testing.T) {
	got := ExtractSkills("Soft Skills\nFluent in Spanish, 10 years")

	assert.True(t, got.Found)
	assert.Empty(t, got.Items)
}

func TestLocateSkillsSection(t *testing.T) {
	block, ok := LocateSkillsSection("Summary\n\nSKILLS\nGo, SQL\nTerraform\n\nEducation")
	require.True(t, ok)
	assert.Equal(t, "Go, SQL\nTerraform", block)

	_, ok = LocateSkillsSection("Skills:   ")
	assert.False(t, ok)
}

func TestStripBullets(t *testing.T) {
	assert.Equal(t, " Go\n Rust ", StripBullets("• Go\n▪ Rust ‣"))
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", " SQL", "Rust", "Terraform"}, SplitSkills("Go, SQL\r\nRust\nTerraform"))
}

func TestTrimSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", ""}, TrimSkills([]string{" Go", "SQL\t", "  "}))
}

func TestFilterSkills(t *testing.T) {
	in := []string{"", "Go", "3 years", "Fluent Spanish", "Proficient in Excel", "go", "Languages: French", "Go", "Kubernetes 2019"}

	assert.Equal(t, []string{"Go", "go", "Go"}, FilterSkills(in))
}
