package catalog

import "learninghub/internal/domain/catalog"

type categoriesInput struct {
	V string `query:"v"`
}

type categoriesOutput struct {
	Body catalog.CategoriesResponse
}

type videosInput struct {
	CategoryID string `path:"categoryId"`
	V          string `query:"v"`
}

type videosOutput struct {
	Body catalog.VideosResponse
}
