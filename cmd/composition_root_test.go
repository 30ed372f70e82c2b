package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pickup/cmd"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_ServesWizard(t *testing.T) {
	config, err := cmd.LoadConfig(envOf(nil))
	require.NoError(t, err)

	app, err := cmd.NewCompositionRoot(config, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	e := echo.New()
	app.NewHTTPServer().Register(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/wizard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"screen":"Calculator"`)

	jm := app.NewJobManager()
	require.NoError(t, jm.StartAll())
	jm.StopAll()
	app.WaitForSubmissions()
}

func TestCompositionRoot_RejectsBadSubmitURL(t *testing.T) {
	config, err := cmd.LoadConfig(envOf(map[string]string{"SUBMIT_URL": "ftp://example.com"}))
	require.NoError(t, err)

	_, err = cmd.NewCompositionRoot(config, slog.Default())
	assert.Error(t, err)
}
