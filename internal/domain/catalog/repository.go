package catalog

import "context"

type Repository interface {
	Categories(ctx context.Context) ([]Category, bool, error)
	SaveCategories(ctx context.Context, categories []Category) error
	Videos(ctx context.Context, categoryID string) ([]Video, bool, error)
	SaveVideos(ctx context.Context, categoryID string, videos []Video) error
}
