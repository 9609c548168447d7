package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const maxBodySize = "1M"

func (s *Server) registerRoutes() {
	// Pre-flight requests are answered before routing so every path gets them;
	// correlation and request logging run ahead so those replies are traced too.
	s.echo.Pre(correlationMiddleware)
	s.echo.Pre(s.setupRequestLoggerMiddleware())
	s.echo.Pre(s.preflightMiddleware())

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.BodyLimit(maxBodySize))
	s.echo.Use(middleware.CORSWithConfig(s.corsConfig()))
	s.echo.Use(s.httpMetrics.Middleware())
	s.echo.Use(ErrorHandlingMiddleware())

	s.registerHealthRoutes()
	s.registerItemRoutes()

	s.echo.GET("/metrics", echo.WrapHandler(s.metricsHandler))
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}
