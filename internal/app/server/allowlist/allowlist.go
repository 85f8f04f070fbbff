// Package allowlist список сотрудников, допущенных к порталу, с перечитыванием файла при изменении.
package allowlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Entry допущенный сотрудник
type Entry struct {
	EmployeeID string `yaml:"employeeId"`
	Name       string `yaml:"name"`
}

type document struct {
	Employees []Entry `yaml:"employees"`
}

type List struct {
	path string
	log  *slog.Logger

	mu   sync.RWMutex
	byID map[string]string
}

// Load читает YAML файл со списком сотрудников
func Load(path string, log *slog.Logger) (*List, error) {
	l := &List{
		path: path,
		log:  log.With(slog.String("component", "allowlist")),
	}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Parse разбирает содержимое файла
func Parse(data []byte) (map[string]string, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse allowlist: %w", err)
	}

	out := make(map[string]string, len(doc.Employees))
	for _, e := range doc.Employees {
		id := strings.TrimSpace(e.EmployeeID)
		if id == "" {
			continue
		}
		out[id] = strings.TrimSpace(e.Name)
	}
	return out, nil
}

// Reload перечитывает файл. При ошибке предыдущий список сохраняется.
func (l *List) Reload() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("read allowlist: %w", err)
	}

	byID, err := Parse(data)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.byID = byID
	l.mu.Unlock()

	l.log.Info("allowlist loaded", slog.Int("employees", len(byID)))

	return nil
}

func (l *List) Lookup(employeeID string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	name, ok := l.byID[strings.TrimSpace(employeeID)]
	return name, ok
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byID)
}

// Watch следит за каталогом файла и перечитывает список при изменениях.
// Наблюдение прекращается при отмене ctx.
func (l *List) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// редакторы часто заменяют файл целиком, поэтому наблюдаем за каталогом
	dir := filepath.Dir(l.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(l.path)

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := l.Reload(); err != nil {
					l.log.Error("allowlist reload failed", slog.String("error", err.Error()))
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.log.Error("allowlist watcher error", slog.String("error", err.Error()))
			}
		}
	}()

	return nil
}
