package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// SyncProducts handles POST /api/v1/sync/products.
func (s *Server) SyncProducts(ctx echo.Context) error {
	report, err := s.sync(ctx, commands.SyncScopeProducts)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report.Products)
}

// SyncOrders handles POST /api/v1/sync/orders.
func (s *Server) SyncOrders(ctx echo.Context) error {
	report, err := s.sync(ctx, commands.SyncScopeOrders)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report.Orders)
}

// SyncAll handles POST /api/v1/sync/all - products first, then orders.
func (s *Server) SyncAll(ctx echo.Context) error {
	report, err := s.sync(ctx, commands.SyncScopeAll)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report)
}

func (s *Server) sync(ctx echo.Context, scope commands.SyncScope) (servers.SyncReport, error) {
	cmd, err := commands.NewSyncCommand(string(scope))
	if err != nil {
		return servers.SyncReport{}, err
	}
	report, err := s.h.Sync.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return servers.SyncReport{}, err
	}
	return toSyncReport(report), nil
}

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	if err := s.health(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, servers.Health{Status: "degraded", Database: "down"})
	}
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok", Database: "up"})
}
