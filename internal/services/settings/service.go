// Package settings implements the key/value settings store. The only key
// defined today is the interface language.
package settings

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aitbekov/tirlik/internal/database"
	"github.com/aitbekov/tirlik/internal/models"
)

// ErrInvalidLanguage is returned for language codes other than ru and kz.
var ErrInvalidLanguage = errors.New("unsupported language")

// Service defines settings operations
type Service interface {
	Language(ctx context.Context) (models.Language, error)
	SetLanguage(ctx context.Context, lang models.Language) error

	Get(ctx context.Context, key string) (*models.Setting, error)
	Put(ctx context.Context, key string, value any) error
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new settings service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Language returns the configured interface language, defaulting to Russian
// when unset or unreadable, matching first-run behavior.
func (s *service) Language(ctx context.Context) (models.Language, error) {
	setting, err := s.repo.GetSetting(ctx, models.SettingLanguage)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LanguageRU, nil
	}
	if err != nil {
		return models.LanguageRU, err
	}
	lang, ok := setting.Value.(string)
	if !ok || !models.Language(lang).Valid() {
		return models.LanguageRU, nil
	}
	return models.Language(lang), nil
}

func (s *service) SetLanguage(ctx context.Context, lang models.Language) error {
	if !lang.Valid() {
		return ErrInvalidLanguage
	}
	return s.repo.PutSetting(ctx, &models.Setting{
		Key:   models.SettingLanguage,
		Value: string(lang),
	})
}

func (s *service) Get(ctx context.Context, key string) (*models.Setting, error) {
	return s.repo.GetSetting(ctx, key)
}

func (s *service) Put(ctx context.Context, key string, value any) error {
	return s.repo.PutSetting(ctx, &models.Setting{Key: key, Value: value})
}
