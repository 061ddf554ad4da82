package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLogger(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	orig := log.Logger
	log.Logger = zerolog.New(buf)
	t.Cleanup(func() { log.Logger = orig })

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Logger(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, buf
}

func TestLoggerReusesInboundRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-abc-123")

	rec, buf := runLogger(t, req)

	assert.Equal(t, "req-abc-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"req-abc-123"`)
	assert.Contains(t, buf.String(), "Request processed")
}

func TestLoggerMintsRequestIDWhenAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tools", nil)

	rec, buf := runLogger(t, req)

	generated := rec.Header().Get(echo.HeaderXRequestID)
	assert.NotEmpty(t, generated)
	assert.Contains(t, buf.String(), `"request_id":"`+generated+`"`)
}
