package httpserver

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var corsAllowMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodOptions,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodHead,
}

const corsDefaultAllowHeaders = echo.HeaderContentType

func (s *Server) corsConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins:     s.config.CORSAllowedOrigins,
		AllowMethods:     corsAllowMethods,
		AllowCredentials: true,
	}
}

// preflightMiddleware answers every OPTIONS request with 200 and the CORS
// grant, without touching any handler. echo's CORS middleware replies 204 and
// stays silent when the request has no Origin header.
func (s *Server) preflightMiddleware() echo.MiddlewareFunc {
	cfg := s.corsConfig()
	allowMethods := strings.Join(cfg.AllowMethods, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodOptions {
				return next(c)
			}

			h := c.Response().Header()
			if origin := allowedOrigin(cfg.AllowOrigins, req.Header.Get(echo.HeaderOrigin)); origin != "" {
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
				if origin != "*" {
					h.Add(echo.HeaderVary, echo.HeaderOrigin)
				}
			}
			h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)

			allowHeaders := req.Header.Get(echo.HeaderAccessControlRequestHeaders)
			if allowHeaders == "" {
				allowHeaders = corsDefaultAllowHeaders
			}
			h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)

			if cfg.AllowCredentials {
				h.Set(echo.HeaderAccessControlAllowCredentials, "true")
			}

			return c.NoContent(http.StatusOK)
		}
	}
}

func allowedOrigin(allowed []string, origin string) string {
	if slices.Contains(allowed, "*") {
		return "*"
	}
	if origin != "" && slices.Contains(allowed, origin) {
		return origin
	}
	return ""
}
