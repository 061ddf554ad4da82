package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestSetupTracingWiresSpanMiddleware(t *testing.T) {
	logger := zerolog.New(os.Stdout)
	e := echo.New()

	shutdown := setupTracing(e, "localhost:4318", logger)
	require.NotNil(t, shutdown)

	var handlerSpan trace.Span
	e.GET("/ping", func(c echo.Context) error {
		handlerSpan = trace.SpanFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, handlerSpan)
	assert.True(t, handlerSpan.SpanContext().IsValid())
}

func TestSetupTracingShutdownIsCallable(t *testing.T) {
	logger := zerolog.New(os.Stdout)

	shutdown := setupTracing(echo.New(), "localhost:4318", logger)
	require.NotNil(t, shutdown)

	assert.NotPanics(t, shutdown)
}
