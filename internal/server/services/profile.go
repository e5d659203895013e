package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
)

// AvatarUploader stores an avatar and returns its object key and public URL.
type AvatarUploader interface {
	Upload(ctx context.Context, userID, fileName, contentType string, body io.Reader) (string, string, error)
}

// ProfileInput is the profile form.
type ProfileInput struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

func (in ProfileInput) Validate() error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	return validateForm(in)
}

// ProfileService lets a signed-in user manage their own profile.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	avatars     AvatarUploader
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, avatars AvatarUploader) *ProfileService {
	return &ProfileService{db: db, repomanager: m, avatars: avatars}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.repomanager.Profiles(s.db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p, err := s.repomanager.Profiles(s.db).Update(ctx, userID, strings.TrimSpace(in.FullName), strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return p, nil
}

// UploadAvatar stores the picture and records its public URL on the profile.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID, fileName, contentType string, body io.Reader) (string, error) {
	if s.avatars == nil {
		return "", fmt.Errorf("error uploading avatar: %w", common.ErrorInternal)
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", schema.NewValidationError("avatar", "Avatar must be an image")
	}

	_, url, err := s.avatars.Upload(ctx, userID, fileName, contentType, body)
	if err != nil {
		return "", fmt.Errorf("error uploading avatar: %w", err)
	}
	if err := s.repomanager.Profiles(s.db).SetAvatarURL(ctx, userID, url); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", err
		}
		return "", fmt.Errorf("error saving avatar url: %w", err)
	}
	return url, nil
}
