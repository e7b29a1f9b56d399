package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_LegacyVariables(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "27018")
	t.Setenv("DB_DATABASE", "vault_test")
	t.Setenv("FOLDER_PATH", "/var/lib/filevault")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, "mongodb://db.internal:27018", c.MongoURI)
	assert.Equal(t, "vault_test", c.MongoDatabase)
	assert.Equal(t, "/var/lib/filevault", c.FolderPath)
}

func TestParseEnv_PartialDBHost(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "mongodb://db.internal:27017", c.MongoURI)
}

func TestParseEnv_TTLAndWorkers(t *testing.T) {
	t.Setenv("SESSION_TTL", "1h30m")
	t.Setenv("WORKER_CONCURRENCY", "8")
	t.Setenv("STORAGE_DRIVER", "s3")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, 90*time.Minute, c.SessionTTL)
	assert.Equal(t, 8, c.WorkerConcurrency)
	assert.Equal(t, StorageS3, c.StorageDriver)
}

func TestParseEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("WORKER_CONCURRENCY", "-1")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 4, c.WorkerConcurrency)
}
