package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ExpandsEnvAndAppliesDefaults(t *testing.T) {
	t.Setenv("NPR_TEST_API_KEY", "k-123")

	path := writeConfig(t, `
api:
  api_key: ${NPR_TEST_API_KEY}
  org_id: "42"
queries:
  - query: "1001"
    publish: true
    category: 7
    tags: [news, national]
  - query: https://api.npr.org/query?id=1149
field_mapping:
  media_credit: credit
  media_agency: credit
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "k-123", cfg.API.APIKey)
	assert.Equal(t, "https://api.npr.org", cfg.API.PullURL)
	assert.Equal(t, cfg.API.PullURL, cfg.API.PushURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, "post", cfg.Ingest.PostType)
	assert.Equal(t, time.Hour, cfg.Sync.Interval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname= sslmode=disable", cfg.Database.DSN())
	assert.False(t, cfg.Database.Migrate)

	require.Len(t, cfg.Queries, 2)
	assert.True(t, cfg.Queries[0].Publish)
	assert.Equal(t, int64(7), cfg.Queries[0].Category)
	assert.Equal(t, []string{"news", "national"}, cfg.Queries[0].Tags)

	keys := cfg.FieldMapping.Keys()
	assert.Equal(t, "credit", keys.ImageCredit)
	assert.Equal(t, keys.ImageCredit, keys.ImageAgency)
	assert.Equal(t, "npr_story_content", keys.StoryContent)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	path := writeConfig(t, `
api:
  pull_url: https://api.example.org/
  push_url: https://push.example.org/
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.org", cfg.API.PullURL)
	assert.Equal(t, "https://push.example.org", cfg.API.PushURL)
}

func TestLoad_TooManyQueries(t *testing.T) {
	var b strings.Builder
	b.WriteString("queries:\n")
	for i := 0; i <= MaxQueries; i++ {
		b.WriteString("  - query: \"1\"\n")
	}

	_, err := Load(writeConfig(t, b.String()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
