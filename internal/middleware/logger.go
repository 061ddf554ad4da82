package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger attaches a request-scoped zerolog logger to the request context and
// emits one line per request. A caller-supplied X-Request-ID is reused so the
// id survives hops through a proxy; otherwise one is minted here. Either way
// the id is echoed back on the response.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestID := c.Request().Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		ctx := c.Request().Context()

		logger := log.With().Str("request_id", requestID).Logger()
		ctx = logger.WithContext(ctx)

		c.SetRequest(c.Request().WithContext(ctx))

		err := next(c)

		latency := time.Since(start).Milliseconds()

		req := c.Request()
		res := c.Response()

		log.Ctx(c.Request().Context()).Info().
			Str("method", req.Method).
			Str("endpoint", req.URL.Path).
			Int("status", res.Status).
			Int64("latency", latency).
			Msg("Request processed")

		return err
	}
}
