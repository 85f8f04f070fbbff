package catalog

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Categories(ctx context.Context) ([]Category, error)
	Videos(ctx context.Context, categoryID string) ([]Video, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "catalog_service")),
	}
}

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	categories, _, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories, nil
}

// Videos список видео раздела. Для неизвестного раздела возвращает ErrCategoryNotFound.
func (s *Service) Videos(ctx context.Context, categoryID string) ([]Video, error) {
	videos, ok, err := s.repo.Videos(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load videos: %w", err)
	}
	if ok {
		return videos, nil
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return []Video{}, nil
		}
	}

	return nil, ErrCategoryNotFound
}

// Seed заполняет пустое хранилище встроенным каталогом
func (s *Service) Seed(ctx context.Context) error {
	_, ok, err := s.repo.Categories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if ok {
		return nil
	}

	categories, videos := Default()
	for id, list := range videos {
		if err := s.repo.SaveVideos(ctx, id, list); err != nil {
			return fmt.Errorf("seed videos %s: %w", id, err)
		}
	}
	if err := s.repo.SaveCategories(ctx, categories); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	s.log.Info("catalog seeded", slog.Int("categories", len(categories)))

	return nil
}
