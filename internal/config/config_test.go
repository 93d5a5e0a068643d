package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, 10, cfg.MaxUploadFiles)
	assert.Equal(t, 4, cfg.ExtractWorkers)
	assert.False(t, cfg.LogJSON)
	assert.False(t, cfg.ArchiveEnabled())
	assert.Equal(t, "http://localhost:8080/swagger/doc.json", cfg.SwaggerURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":             "9000",
		"DATABASE_URL":     "postgres://u:p@localhost:5432/cv?sslmode=disable",
		"MAX_UPLOAD_FILES": "3",
		"EXTRACT_WORKERS":  "16",
		"LOG_JSON":         "true",
		"LOG_DEBUG":        "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 3, cfg.MaxUploadFiles)
	assert.Equal(t, 16, cfg.ExtractWorkers)
	assert.True(t, cfg.LogJSON)
	assert.True(t, cfg.LogDebug)
	assert.True(t, cfg.ArchiveEnabled())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non numeric port", map[string]string{"PORT": "http"}},
		{"zero workers", map[string]string{"EXTRACT_WORKERS": "0"}},
		{"not an integer", map[string]string{"MAX_UPLOAD_MB": "ten"}},
		{"not a boolean", map[string]string{"LOG_JSON": "maybe"}},
		{"bad swagger url", map[string]string{"SWAGGER_URL": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			assert.Error(t, err)
		})
	}
}
