package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies the default timeout everywhere except the
// chat turn endpoint, which may spend minutes inside text-generation calls
// and gets the long timeout instead.
func SelectiveTimeoutConfig(defaultTimeout, llmTimeout time.Duration) echo.MiddlewareFunc {
	short := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
		Skipper: func(c echo.Context) bool {
			return isLLMEndpoint(c.Path())
		},
	})
	long := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: llmTimeout,
		Skipper: func(c echo.Context) bool {
			return !isLLMEndpoint(c.Path())
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return short(long(next))
	}
}

func isLLMEndpoint(path string) bool {
	return strings.HasSuffix(path, "/messages")
}
