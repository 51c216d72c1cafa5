// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and issuing JWT access
// tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/ecoscan/internal/common"
	"github.com/dmitrijs2005/ecoscan/internal/server/auth"
	"github.com/dmitrijs2005/ecoscan/internal/server/config"
	"github.com/dmitrijs2005/ecoscan/internal/server/models"
	"github.com/dmitrijs2005/ecoscan/internal/server/repositories/repomanager"
)

// AuthResult is what a successful registration or login yields: the stored
// user and a signed access token carrying its id and role.
type AuthResult struct {
	User        *models.User
	AccessToken string
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint tokens
// - EnsureAdmin: seed the administrator account at startup
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	adminEmail                  string
	adminPassword               string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		adminEmail:                  cfg.AdminEmail,
		adminPassword:               cfg.AdminPassword,
	}
}

// Register creates a new user with the "user" role and returns it together
// with a fresh access token. A duplicate email yields common.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, name, email string, password []byte) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash, Role: models.RoleUser}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return s.authResult(u)
}

// Login verifies the password against the stored bcrypt hash and, on
// success, returns the user with a new access token.
func (s *UserService) Login(ctx context.Context, email string, password []byte) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, password) != nil {
		return nil, common.ErrorUnauthorized
	}
	return s.authResult(user)
}

// EnsureAdmin creates the administrator account configured in AdminEmail if
// it does not exist yet. Meant to run once at server startup; the role comes
// from the stored record, never from the email itself.
func (s *UserService) EnsureAdmin(ctx context.Context) error {
	if s.adminEmail == "" {
		return nil
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByEmail(ctx, s.adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{Name: "Administrator", Email: s.adminEmail, PasswordHash: hash, Role: models.RoleAdmin}
	if _, err := repo.Create(ctx, admin); err != nil {
		// a concurrent start may have won the race
		if errors.Is(err, common.ErrEmailTaken) {
			return nil
		}
		return err
	}
	return nil
}

func (s *UserService) authResult(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{User: user, AccessToken: token}, nil
}
