package storage

import (
	"context"

	"golang.org/x/exp/slog"

	"learninghub/internal/domain/catalog"
)

type CatalogRepository struct {
	store Store
	log   *slog.Logger
}

func NewCatalogRepository(store Store, log *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		store: store,
		log:   log,
	}
}

func (r *CatalogRepository) Categories(ctx context.Context) ([]catalog.Category, bool, error) {
	var categories []catalog.Category
	ok, err := getJSON(ctx, r.store, CategoriesKey, &categories)
	return categories, ok, err
}

func (r *CatalogRepository) SaveCategories(ctx context.Context, categories []catalog.Category) error {
	return setJSON(ctx, r.store, CategoriesKey, categories)
}

func (r *CatalogRepository) Videos(ctx context.Context, categoryID string) ([]catalog.Video, bool, error) {
	var videos []catalog.Video
	ok, err := getJSON(ctx, r.store, VideosKey(categoryID), &videos)
	return videos, ok, err
}

func (r *CatalogRepository) SaveVideos(ctx context.Context, categoryID string, videos []catalog.Video) error {
	return setJSON(ctx, r.store, VideosKey(categoryID), videos)
}
