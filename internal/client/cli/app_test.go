package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filevault/internal/client/client"
	"github.com/dmitrijs2005/filevault/internal/client/config"
	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/httpapi"
	"github.com/dmitrijs2005/filevault/internal/server/kv"
	"github.com/dmitrijs2005/filevault/internal/server/queue"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/services"
	"github.com/dmitrijs2005/filevault/internal/server/sessions"
	"github.com/dmitrijs2005/filevault/internal/server/storage"
)

// newCLIFixture spins up the real HTTP API on an in-memory stack and wires
// an App against it with scripted input.
func newCLIFixture(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	m := repomanager.NewMemoryRepositoryManager()
	sess := sessions.NewStore(kv.NewMemoryStore(), 24*time.Hour)
	st := storage.NewFSStore(t.TempDir())
	q := queue.NewMemoryQueue(16)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	h := httpapi.NewHandler(
		services.NewAppService(m, sess),
		services.NewUserService(m),
		services.NewAuthService(m, sess),
		services.NewFileService(m, st, q),
		logger,
	)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerURL: srv.URL, TokenFile: "token", RequestTimeout: 5 * time.Second}
	var out bytes.Buffer

	return &App{
		config:    cfg,
		api:       client.New(cfg.ServerURL, cfg.RequestTimeout),
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       &out,
		tokenPath: filepath.Join(t.TempDir(), "token"),
	}, &out
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte(password), nil }
}

func TestAppRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	stubPassword(t, "toto1234!")

	app, out := newCLIFixture(t, "bob@dylan.com\nbob@dylan.com\n")

	require.NoError(t, app.Register(ctx))
	assert.Contains(t, out.String(), "Registered bob@dylan.com")

	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())

	// the token survives for a fresh client reading the same state file
	data, err := os.ReadFile(app.tokenPath)
	require.NoError(t, err)
	assert.Equal(t, app.api.Token(), strings.TrimSpace(string(data)))
}

func TestAppLoginFailurePrintsError(t *testing.T) {
	ctx := context.Background()
	stubPassword(t, "wrong")

	app, out := newCLIFixture(t, "nobody@dylan.com\n")

	err := app.Login(ctx)
	require.Error(t, err)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "unauthorized")
}

func TestAppUploadListDownload(t *testing.T) {
	ctx := context.Background()
	stubPassword(t, "toto1234!")

	src := filepath.Join(t.TempDir(), "myText.txt")
	require.NoError(t, os.WriteFile(src, []byte("Hello Webstack!\n"), 0o600))
	dest := filepath.Join(t.TempDir(), "copy.txt")

	input := strings.Join([]string{
		"bob@dylan.com", // register email
		"bob@dylan.com", // login email
		"docs",          // mkdir name
		"",              // mkdir parent
		src,             // upload path
		"",              // upload parent
		"",              // list parent
		"",              // list page
	}, "\n") + "\n"

	app, out := newCLIFixture(t, input)

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))
	require.NoError(t, app.Mkdir(ctx))
	require.NoError(t, app.Upload(ctx))
	require.NoError(t, app.List(ctx))

	assert.Contains(t, out.String(), "myText.txt")
	assert.Contains(t, out.String(), "2 entries")

	// pull the uploaded id out of the upload confirmation
	var fileID string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "Uploaded myText.txt") {
			fileID = strings.TrimSuffix(strings.Split(line, "(id ")[1], ", type file)")
		}
	}
	require.NotEmpty(t, fileID)

	app.reader = bufio.NewReader(strings.NewReader(fileID + "\n\n" + dest + "\n"))
	require.NoError(t, app.Download(ctx))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "Hello Webstack!\n", string(data))
}

func TestAppLogoutClearsState(t *testing.T) {
	ctx := context.Background()
	stubPassword(t, "toto1234!")

	app, _ := newCLIFixture(t, "bob@dylan.com\nbob@dylan.com\n")
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	_, err := os.Stat(app.tokenPath)
	assert.True(t, os.IsNotExist(err))
}

func TestEntryTypeForFile(t *testing.T) {
	assert.Equal(t, "image", entryTypeForFile("photo.PNG"))
	assert.Equal(t, "image", entryTypeForFile("photo.jpeg"))
	assert.Equal(t, "file", entryTypeForFile("notes.txt"))
	assert.Equal(t, "file", entryTypeForFile("archive"))
}
