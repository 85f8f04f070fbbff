// Package storage описывает ключ-значение хранилище сервера и репозитории доменов поверх него.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Ключи хранилища
const (
	ProgressPrefix   = "progress_"
	UsersListKey     = "users_list"
	AttendancePrefix = "attendance_"
	CategoriesKey    = "education_categories"
	VideosPrefix     = "videos_"
)

var ErrEmptyKey = errors.New("empty key")

// Entry пара ключ-значение
type Entry struct {
	Key   string
	Value json.RawMessage
}

// Store ключ-значение хранилище с JSON значениями
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

func ProgressKey(userID, videoID string) string {
	return ProgressPrefix + userID + "_" + videoID
}

func AttendanceKey(employeeID string) string {
	return AttendancePrefix + employeeID
}

func VideosKey(categoryID string) string {
	return VideosPrefix + categoryID
}

func getJSON(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func setJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
