// Package http provides the HTTP server for the concierge service.
package http

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/helloasmak/vyra/internal/config"
	"github.com/helloasmak/vyra/internal/service"
	v1 "github.com/helloasmak/vyra/internal/transport/http/v1"
	"github.com/helloasmak/vyra/internal/transport/ws"
)

// NewServer creates the public HTTP server. wsServer may be nil to disable /ws.
func NewServer(svc *service.Service, cfg *config.Config, wsServer *ws.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}
			slog.LogAttrs(context.Background(), level, "http_request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("latency_ms", v.Latency.Milliseconds()),
				slog.Any("error", v.Error),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
	}))

	v1Handler := v1.NewHandler(svc)
	v1Handler.RegisterRoutes(e)
	if cfg.OperatorToken != "" {
		v1Handler.RegisterOperatorRoutes(e, cfg.OperatorToken)
	}

	if wsServer != nil {
		e.GET("/ws", wsServer.HandleWebSocket)
	}

	return e
}
