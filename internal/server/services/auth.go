package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/filevault/internal/common"
	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/sessions"
)

// AuthService turns Basic credentials into session tokens and back into
// users. Every failure mode of Login collapses into ErrorUnauthorized so a
// caller cannot probe which part of the credentials was wrong.
type AuthService struct {
	repomanager repomanager.RepositoryManager
	sessions    *sessions.Store
}

func NewAuthService(m repomanager.RepositoryManager, s *sessions.Store) *AuthService {
	return &AuthService{repomanager: m, sessions: s}
}

// parseBasicAuth extracts email and password from a "Basic <base64>" header
// value. Empty fields count as malformed.
func parseBasicAuth(header string) (string, string, error) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", common.ErrorUnauthorized
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		return "", "", common.ErrorUnauthorized
	}
	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return "", "", common.ErrorUnauthorized
	}
	return email, password, nil
}

// Login verifies Basic credentials and mints a session token.
func (s *AuthService) Login(ctx context.Context, authHeader string) (string, error) {
	email, password, err := parseBasicAuth(authHeader)
	if err != nil {
		return "", common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	return s.sessions.Create(ctx, user.ID)
}

// Logout revokes the session behind the token. An unresolvable token is
// rejected rather than silently ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.Resolve(ctx, token); err != nil {
		return err
	}
	return s.sessions.Revoke(ctx, token)
}

// Resolve maps a session token to a user id, or ErrorUnauthorized when the
// token is absent, unknown or expired.
func (s *AuthService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrorUnauthorized
	}
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	return userID, nil
}

// CurrentUser resolves the token and loads the account behind it.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
