package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	file := filepath.Join(t.TempDir(), "config.json")
	content := `{"server_url":"http://vault.local","token_file":"session","request_timeout":"30s"}`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	os.Args = []string{"cli", "-c", file}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://vault.local", c.ServerURL)
	assert.Equal(t, "session", c.TokenFile)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}

func TestParseJsonNoFile(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cli"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://127.0.0.1:5000", c.ServerURL)
}
