package services

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/kv"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/sessions"
)

func basicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func newAuthFixture(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	store := sessions.NewStore(kv.NewMemoryStore(), 24*time.Hour)
	return NewAuthService(m, store), NewUserService(m)
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	auth, users := newAuthFixture(t)

	_, err := users.Register(ctx, "bob@dylan.com", "toto1234!")
	require.NoError(t, err)

	token, err := auth.Login(ctx, basicHeader("bob@dylan.com", "toto1234!"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := auth.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "bob@dylan.com", user.Email)
}

func TestAuthServiceLoginRejections(t *testing.T) {
	ctx := context.Background()
	auth, users := newAuthFixture(t)

	_, err := users.Register(ctx, "bob@dylan.com", "toto1234!")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Bearer abc"},
		{"bad base64", "Basic @@@"},
		{"no separator", "Basic " + base64.StdEncoding.EncodeToString([]byte("bobdylan.com"))},
		{"empty password", basicHeader("bob@dylan.com", "")},
		{"unknown email", basicHeader("nobody@dylan.com", "toto1234!")},
		{"wrong password", basicHeader("bob@dylan.com", "nope")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(ctx, tt.header)
			assert.ErrorIs(t, err, common.ErrorUnauthorized)
		})
	}
}

func TestAuthServiceLogout(t *testing.T) {
	ctx := context.Background()
	auth, users := newAuthFixture(t)

	_, err := users.Register(ctx, "bob@dylan.com", "toto1234!")
	require.NoError(t, err)

	token, err := auth.Login(ctx, basicHeader("bob@dylan.com", "toto1234!"))
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, token))

	// the token is gone for every operation afterwards
	_, err = auth.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	err = auth.Logout(ctx, token)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthServiceResolveUnknownToken(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture(t)

	_, err := auth.Resolve(ctx, "no-such-token")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = auth.Resolve(ctx, "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
