// Package memory хранилище в памяти процесса. Используется, когда DATABASE_URI не задан, и в тестах.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"learninghub/internal/infrastructure/storage"
)

type Store struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func New() *Store {
	return &Store{data: make(map[string]json.RawMessage)}
}

func (s *Store) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

func (s *Store) Set(_ context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return storage.ErrEmptyKey
	}

	s.mu.Lock()
	s.data[key] = clone(value)
	s.mu.Unlock()

	return nil
}

func (s *Store) GetByPrefix(_ context.Context, prefix string) ([]storage.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]storage.Entry, 0)
	for k, v := range s.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, storage.Entry{Key: k, Value: clone(v)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) Close() error {
	return nil
}

func clone(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}
