package catalog

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"learninghub/internal/app/server/api/http/apierror"
	"learninghub/internal/domain/catalog"
	"learninghub/internal/infrastructure/storage"
	"learninghub/internal/infrastructure/storage/memory"
)

func setup(t *testing.T) humatest.TestAPI {
	apierror.Install()
	_, api := humatest.New(t)

	repo := storage.NewCatalogRepository(memory.New(), slog.Default())
	svc := catalog.NewService(repo, slog.Default())
	require.NoError(t, svc.Seed(context.Background()))

	NewHandler(svc, slog.Default(), nil).SetupRoutes(api)
	return api
}

func TestHandler_Categories(t *testing.T) {
	api := setup(t)

	resp := api.Get("/api/v1/categories?v=3")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"emergency"`)
	assert.Contains(t, resp.Body.String(), `"videoCount":2`)
}

func TestHandler_Videos(t *testing.T) {
	api := setup(t)

	resp := api.Get("/api/v1/videos/troubleshooting")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"troubleshooting-3"`)
}

func TestHandler_Videos_UnknownCategory(t *testing.T) {
	api := setup(t)

	resp := api.Get("/api/v1/videos/nope")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":false`)
}
