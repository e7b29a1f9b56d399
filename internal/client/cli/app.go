// Package cli implements the interactive filevault client: a small REPL
// over the HTTP API with a session token persisted between runs.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/filevault/internal/client/client"
	"github.com/dmitrijs2005/filevault/internal/client/config"
	"github.com/dmitrijs2005/filevault/internal/filex"
)

// stateDirName is the directory keeping CLI state next to the invocation.
const stateDirName = ".filevault"

type App struct {
	config    *config.Config
	api       *client.Client
	reader    *bufio.Reader
	out       io.Writer
	tokenPath string
}

func NewApp(c *config.Config) (*App, error) {

	dir, err := filex.EnsureSubDir(stateDirName)
	if err != nil {
		return nil, err
	}
	tokenPath := filepath.Join(dir, c.TokenFile)

	api := client.New(c.ServerURL, c.RequestTimeout)

	// a token saved by a previous run restores the session
	if data, err := os.ReadFile(tokenPath); err == nil {
		api.SetToken(strings.TrimSpace(string(data)))
	}

	return &App{
		config:    c,
		api:       api,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		tokenPath: tokenPath,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) saveToken() error {
	return os.WriteFile(a.tokenPath, []byte(a.api.Token()), 0o600)
}

func (a *App) clearToken() error {
	if err := os.Remove(a.tokenPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (a *App) statusLine() string {
	if a.isLoggedIn() {
		return "connected"
	}
	return "anonymous"
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}
