package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/session"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// AuthService owns the session lifecycle: it is the only writer of the
// bearer token.
type AuthService struct {
	client *backend.Client
	store  session.Store
	logger *zap.Logger
}

// NewAuthService constructs the service.
func NewAuthService(client *backend.Client, store session.Store, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{client: client, store: store, logger: logger}
}

// Login exchanges credentials for a backend token and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required", nil)
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, apperrors.NewBackendError("login succeeded without a token", 502)
	}

	claims, err := session.ParseClaims(resp.Token)
	if err != nil {
		s.logger.Warn("backend issued an unparseable token", zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}

	sess, err := s.store.Create(ctx, resp.Token, *claims)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.logger.Info("session opened", zap.String("user", claims.UserID))
	return sess, nil
}

// Logout destroys the session. Destroying an already-gone session is fine.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.store.Destroy(ctx, sessionID)
}
