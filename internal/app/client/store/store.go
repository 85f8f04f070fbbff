// Package store локальное хранилище клиента: ключ -> JSON строка.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/exp/slog"
)

// Store синхронное хранилище ключ-значение. Отсутствие ключа не ошибка.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

var ErrEmptyKey = errors.New("пустой ключ")

// LoadJSON читает и декодирует значение. Поврежденная запись удаляется и считается отсутствующей,
// dst при этом обнуляется.
func LoadJSON(s Store, key string, dst any, log *slog.Logger) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		if v := reflect.ValueOf(dst); v.Kind() == reflect.Pointer && !v.IsNil() {
			v.Elem().SetZero()
		}
		log.Warn("Поврежденные локальные данные удалены",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		if derr := s.Delete(key); derr != nil {
			return false, fmt.Errorf("ошибка удаления поврежденного ключа %s: %w", key, derr)
		}
		return false, nil
	}

	return true, nil
}

// SaveJSON кодирует и сохраняет значение
func SaveJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("ошибка маршалинга %s: %w", key, err)
	}
	return s.Set(key, raw)
}
