// Package services contains application services for the EcoScan client.
// This file defines the session service: login, registration, logout, and
// restoring a persisted session at process start.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/ecoscan/internal/client/client"
	"github.com/dmitrijs2005/ecoscan/internal/client/models"
	"github.com/dmitrijs2005/ecoscan/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ecoscan/internal/common"
	"github.com/dmitrijs2005/ecoscan/internal/dbx"
	"github.com/dmitrijs2005/ecoscan/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// SessionState names the phase of the session lifecycle. The service starts
// in SessionLoading, moves to Anonymous or Authenticated after exactly one
// Restore, and then switches between the two via login/register/logout.
type SessionState string

const (
	SessionLoading       SessionState = "loading"
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

const (
	metaKeyToken    = "token"
	metaKeyIdentity = "identity"
)

const minPasswordLength = 8

// SessionService owns the current session. At most one session is current;
// every successful login or register fully replaces it, and logout clears
// it. The token and identity are persisted in the local metadata store so a
// session survives restarts.
type SessionService struct {
	mu      sync.Mutex
	state   SessionState
	current *models.Session

	client client.Client
	db     *sql.DB
	logger logging.Logger
}

// NewSessionService constructs a SessionService bound to the given API
// client and local DB.
func NewSessionService(api client.Client, db *sql.DB, logger logging.Logger) *SessionService {
	return &SessionService{
		state:  SessionLoading,
		client: api,
		db:     db,
		logger: logger.With("module", "session"),
	}
}

func (s *SessionService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Restore loads the persisted session, if any. It is meant to be called
// exactly once, at process start; later calls are no-ops returning the
// current session. Corrupt persisted state is cleared and treated as "no
// session" — Restore never fails.
func (s *SessionService) Restore(ctx context.Context) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionLoading {
		return s.current
	}

	sess := s.readPersisted(ctx)
	if sess == nil {
		s.clearPersisted(ctx)
		s.state = SessionAnonymous
		return nil
	}

	s.current = sess
	s.state = SessionAuthenticated
	return sess
}

// readPersisted returns nil when the persisted state is absent or fails
// validation in any way.
func (s *SessionService) readPersisted(ctx context.Context) *models.Session {
	repo := s.getMetadataRepo()

	token, err := repo.Get(ctx, metaKeyToken)
	if err != nil || len(token) == 0 {
		return nil
	}
	rawIdentity, err := repo.Get(ctx, metaKeyIdentity)
	if err != nil || len(rawIdentity) == 0 {
		return nil
	}

	// The token must at least have the shape of a JWT before it is trusted.
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), jwt.MapClaims{}); err != nil {
		s.logger.Warn(ctx, "persisted token is malformed, discarding session")
		return nil
	}

	var identity models.Identity
	if err := json.Unmarshal(rawIdentity, &identity); err != nil {
		s.logger.Warn(ctx, "persisted identity is corrupt, discarding session")
		return nil
	}
	if identity.ID == "" || identity.Email == "" {
		return nil
	}

	return &models.Session{Identity: identity, Token: string(token)}
}

// Login authenticates against the backend and, on success, replaces and
// persists the current session. On failure the current session is left
// unchanged.
func (s *SessionService) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	if email == "" || len(password) == 0 {
		return nil, common.ErrInvalidInput
	}

	token, identity, err := s.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login error: %w", err)
	}

	return s.install(ctx, token, identity)
}

// Register creates a new account and, like Login, replaces and persists the
// current session on success.
func (s *SessionService) Register(ctx context.Context, name string, email string, password []byte) (*models.Session, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	token, identity, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, client.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("registration error: %w", err)
	}

	return s.install(ctx, token, identity)
}

func validateRegistration(name string, email string, password []byte) error {
	if name == "" || email == "" {
		return common.ErrInvalidInput
	}
	if !strings.Contains(email, "@") {
		return common.ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return common.ErrInvalidInput
	}
	return nil
}

// install persists the session and then makes it current. If persisting
// fails the previous session stays in place.
func (s *SessionService) install(ctx context.Context, token string, identity *models.Identity) (*models.Session, error) {
	if identity == nil {
		return nil, common.ErrorInternal
	}

	rawIdentity, err := json.Marshal(identity)
	if err != nil {
		return nil, fmt.Errorf("identity encoding error: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := metadata.NewSQLiteRepository(tx)
		if err := txRepo.Set(ctx, metaKeyToken, []byte(token)); err != nil {
			return err
		}
		return txRepo.Set(ctx, metaKeyIdentity, rawIdentity)
	})
	if err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	sess := &models.Session{Identity: *identity, Token: token}

	s.mu.Lock()
	s.current = sess
	s.state = SessionAuthenticated
	s.mu.Unlock()

	return sess, nil
}

// Logout clears the current session and its persisted copy. It always
// succeeds and is idempotent; persistence errors are logged, not returned.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	if s.state != SessionLoading {
		s.state = SessionAnonymous
	}
	s.mu.Unlock()

	s.clearPersisted(ctx)
}

func (s *SessionService) clearPersisted(ctx context.Context) {
	if err := s.getMetadataRepo().Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear persisted session", "error", err)
	}
}

// Current returns the active session, or nil when anonymous or still
// loading.
func (s *SessionService) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsLoading reports whether the initial Restore has not happened yet.
func (s *SessionService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == SessionLoading
}

// State returns the current lifecycle state.
func (s *SessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
