// Package services contains server-side business logic. Each service owns a
// *sql.DB and a RepositoryManager and opens a transaction whenever an
// operation touches more than one table.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/dbx"
	"github.com/dmitrijs2005/adminpanel/internal/server/auth"
	"github.com/dmitrijs2005/adminpanel/internal/server/config"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/roles"
	"github.com/dmitrijs2005/adminpanel/internal/server/session"
)

type signUpForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
	FullName string `json:"full_name" validate:"max=100"`
}

type passwordForm struct {
	NewPassword     string `json:"new_password" validate:"min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=NewPassword"`
}

// TokenPair bundles a short-lived access token and a long-lived refresh token
// together with the session they were issued for.
type TokenPair struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Session      *session.Session `json:"session"`
}

// AuthService handles sign-up, sign-in, token rotation and sign-out.
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// SignUp creates a login account and its profile in one transaction.
func (s *AuthService) SignUp(ctx context.Context, email, password, fullName string) (*models.User, error) {
	form := signUpForm{Email: strings.TrimSpace(email), Password: password, FullName: strings.TrimSpace(fullName)}
	if err := validateForm(form); err != nil {
		return nil, err
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, _, err = createAccount(ctx, s.repomanager, tx, email, password, fullName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// createAccount inserts the users and profiles rows for a new account.
func createAccount(ctx context.Context, m repomanager.RepositoryManager, tx dbx.DBTX, email, password, fullName string) (*models.User, *models.Profile, error) {
	hash, err := auth.HashPassword([]byte(password))
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	email = strings.TrimSpace(email)
	user, err := m.Users(tx).Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	profile := &models.Profile{
		ID:       user.ID,
		FullName: optional(fullName),
		Email:    &email,
		IsActive: true,
	}
	profile, err = m.Profiles(tx).Create(ctx, profile)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating profile: %w", err)
	}
	return user, profile, nil
}

// Login verifies the password and, for an active account, returns a new
// TokenPair. Unknown emails and wrong passwords are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, []byte(password))
	if err != nil {
		return nil, fmt.Errorf("error checking password: %w", err)
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	sess, err := s.resolveSession(ctx, s.db, user)
	if err != nil {
		return nil, err
	}
	return s.generateTokenPair(ctx, sess, s.db)
}

// Refresh validates a refresh token, rotates it transactionally, and returns
// a fresh TokenPair. The role is looked up again, so role changes take effect
// on the next refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}

		user, err := s.repomanager.Users(tx).GetByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error loading user: %w", err)
		}

		sess, err := s.resolveSession(ctx, tx, user)
		if err != nil {
			return err
		}
		pair, err = s.generateTokenPair(ctx, sess, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// SignOut revokes every refresh token of userID.
func (s *AuthService) SignOut(ctx context.Context, userID string) error {
	if err := s.repomanager.RefreshTokens(s.db).DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("error revoking refresh tokens: %w", err)
	}
	return nil
}

// ChangePassword replaces the password of userID. confirm must repeat
// newPassword.
func (s *AuthService) ChangePassword(ctx context.Context, userID, newPassword, confirm string) error {
	if err := validateForm(passwordForm{NewPassword: newPassword, ConfirmPassword: confirm}); err != nil {
		return err
	}

	hash, err := auth.HashPassword([]byte(newPassword))
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.repomanager.Users(s.db).UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// Authenticate turns an access token into a Session.
func (s *AuthService) Authenticate(accessToken string) (*session.Session, error) {
	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return session.FromClaims(claims), nil
}

// --- helpers below ---

func (s *AuthService) resolveSession(ctx context.Context, db dbx.DBTX, user *models.User) (*session.Session, error) {
	profile, err := s.repomanager.Profiles(db).Get(ctx, user.ID)
	switch {
	case err == nil:
		if !profile.IsActive {
			return nil, common.ErrorInactiveAccount
		}
	case errors.Is(err, common.ErrorNotFound):
		// accounts created outside the API may lack a profile row
	default:
		return nil, fmt.Errorf("error loading profile: %w", err)
	}

	held, err := s.repomanager.Roles(db).ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading roles: %w", err)
	}
	return &session.Session{UserID: user.ID, Email: user.Email, Role: roles.Resolve(held)}, nil
}

func (s *AuthService) generateAccessToken(sess *session.Session) (string, error) {
	return auth.GenerateToken(sess.UserID, sess.Email, sess.Role, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *AuthService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *AuthService) generateTokenPair(ctx context.Context, sess *session.Session, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(sess)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, sess.UserID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, Session: sess}, nil
}
