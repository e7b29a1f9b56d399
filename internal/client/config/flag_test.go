package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cli", "-a", "http://example.com:8080", "-i", "3"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://example.com:8080", c.ServerURL)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
}

func TestParseFlagsKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cli"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://127.0.0.1:5000", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}
