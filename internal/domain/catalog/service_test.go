package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Categories(ctx context.Context) ([]Category, bool, error) {
	args := m.Called(ctx)
	var out []Category
	if v := args.Get(0); v != nil {
		out = v.([]Category)
	}
	return out, args.Bool(1), args.Error(2)
}

func (m *MockRepository) SaveCategories(ctx context.Context, categories []Category) error {
	return m.Called(ctx, categories).Error(0)
}

func (m *MockRepository) Videos(ctx context.Context, categoryID string) ([]Video, bool, error) {
	args := m.Called(ctx, categoryID)
	var out []Video
	if v := args.Get(0); v != nil {
		out = v.([]Video)
	}
	return out, args.Bool(1), args.Error(2)
}

func (m *MockRepository) SaveVideos(ctx context.Context, categoryID string, videos []Video) error {
	return m.Called(ctx, categoryID, videos).Error(0)
}

func TestDefault(t *testing.T) {
	categories, videos := Default()
	require.NotEmpty(t, categories)

	for _, c := range categories {
		list, ok := videos[c.ID]
		require.True(t, ok, c.ID)
		assert.Equal(t, len(list), c.VideoCount)
		for _, v := range list {
			assert.Equal(t, c.ID, v.Category)
			assert.Positive(t, v.Duration)
		}
	}
}

func TestService_Seed(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Categories", mock.Anything).Return(nil, false, nil)
	repo.On("SaveVideos", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("SaveCategories", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, service.Seed(context.Background()))

	categories, _ := Default()
	repo.AssertNumberOfCalls(t, "SaveVideos", len(categories))
	repo.AssertNumberOfCalls(t, "SaveCategories", 1)
}

func TestService_Seed_AlreadySeeded(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Categories", mock.Anything).Return([]Category{{ID: "basic"}}, true, nil)

	require.NoError(t, service.Seed(context.Background()))
	repo.AssertNotCalled(t, "SaveCategories", mock.Anything, mock.Anything)
}

func TestService_Videos(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Videos", mock.Anything, "basic").Return([]Video{{ID: "basic-1"}}, true, nil)
	repo.On("Videos", mock.Anything, "empty").Return(nil, false, nil)
	repo.On("Videos", mock.Anything, "missing").Return(nil, false, nil)
	repo.On("Categories", mock.Anything).Return([]Category{{ID: "basic"}, {ID: "empty"}}, true, nil)

	videos, err := service.Videos(context.Background(), "basic")
	require.NoError(t, err)
	assert.Len(t, videos, 1)

	videos, err = service.Videos(context.Background(), "empty")
	require.NoError(t, err)
	assert.Empty(t, videos)

	_, err = service.Videos(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_Categories_Error(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Categories", mock.Anything).Return(nil, false, errors.New("database error"))

	_, err := service.Categories(context.Background())
	assert.Error(t, err)
}
