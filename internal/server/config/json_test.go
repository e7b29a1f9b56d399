package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysNonEmptyFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"endpoint_addr": ":9999",
		"database_driver": "postgres",
		"session_ttl": "12h",
		"worker_concurrency": 2
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, "postgres", c.DatabaseDriver)
	assert.Equal(t, 12*time.Hour, c.SessionTTL)
	assert.Equal(t, 2, c.WorkerConcurrency)

	// untouched fields keep their defaults
	assert.Equal(t, "files_manager", c.MongoDatabase)
	assert.Equal(t, "fileQueue", c.QueueName)
}

func TestParseJson_NoConfigFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd"}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":5000", c.EndpointAddr)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", "/nonexistent/config.json"}

	c := &Config{}
	c.LoadDefaults()
	require.Panics(t, func() { parseJson(c) })
}
