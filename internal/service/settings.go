package service

import (
	"context"
	"strings"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/repository"
)

const (
	maxSettingKeyLen = 100

	msgSettingNotFound = "setting not found"
	msgValueRequired   = "value is required"
	msgKeyRequired     = "setting key required"
)

type SettingsService struct {
	repo repository.SettingsRepo
}

func NewSettingsService(repo repository.SettingsRepo) *SettingsService {
	return &SettingsService{repo: repo}
}

func validateKey(key string) error {
	if key == "" || len(key) > maxSettingKeyLen || strings.ContainsAny(key, " \t\r\n") {
		return validationError(msgKeyRequired)
	}
	return nil
}

func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	out, err := s.repo.All(ctx)
	if err != nil {
		return nil, internalError("failed to load settings", err)
	}
	return out, nil
}

func (s *SettingsService) Get(ctx context.Context, key string) (models.Setting, error) {
	if err := validateKey(key); err != nil {
		return models.Setting{}, err
	}
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		return models.Setting{}, notFoundOrInternal(err, msgSettingNotFound, "failed to load setting")
	}
	return models.Setting{Key: key, Value: v}, nil
}

// Put creates or overwrites a setting. A nil value means the body had no "value".
func (s *SettingsService) Put(ctx context.Context, key string, value *string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if value == nil {
		return validationError(msgValueRequired)
	}
	if err := s.repo.Upsert(ctx, key, *value); err != nil {
		return internalError("failed to update setting", err)
	}
	return nil
}
