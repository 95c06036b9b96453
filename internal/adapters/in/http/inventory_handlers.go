package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListLocations handles GET /api/v1/locations.
func (s *Server) ListLocations(ctx echo.Context) error {
	locations, err := s.h.ListLocations.Handle(ctx.Request().Context(), queries.NewListLocationsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Location, 0, len(locations))
	for _, l := range locations {
		response = append(response, toLocation(l))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateLocation handles POST /api/v1/locations. Posting an existing code
// returns that location.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var body servers.LocationInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateLocationCommand(kernel.NewUUID(), body.Code, deref(body.Name))
	if err != nil {
		return err
	}
	loc, err := s.h.CreateLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	locations, err := s.h.ListLocations.Handle(ctx.Request().Context(), queries.NewListLocationsQuery())
	if err != nil {
		return err
	}
	for _, l := range locations {
		if l.ID.IsEqual(loc.ID()) {
			return ctx.JSON(http.StatusCreated, toLocation(l))
		}
	}
	return errs.NewObjectNotFoundError("location", loc.ID().String())
}

// ListProductLocations handles GET /api/v1/products/{productId}/locations.
func (s *Server) ListProductLocations(ctx echo.Context, productId servers.ProductId) error {
	id, err := toKernelID(productId)
	if err != nil {
		return err
	}
	query, err := queries.NewListProductLocationsQuery(id)
	if err != nil {
		return err
	}
	placements, err := s.h.ListProductLocations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.ProductLocation, 0, len(placements))
	for _, p := range placements {
		response = append(response, servers.ProductLocation{
			LocationId: p.LocationID.Bytes(),
			Code:       p.Code,
			Name:       p.Name,
			OnHand:     p.OnHand,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// AssignLocation handles POST /api/v1/products/{productId}/assign-location.
func (s *Server) AssignLocation(ctx echo.Context, productId servers.ProductId) error {
	var body servers.AssignLocationInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernelID(productId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAssignLocationCommand(id, body.Code, derefInt(body.OnHand))
	if err != nil {
		return err
	}
	if err = s.h.AssignLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StockIn handles POST /api/v1/stock/in.
func (s *Server) StockIn(ctx echo.Context) error {
	return s.recordMovement(ctx, inventory.MovementIn)
}

// StockOut handles POST /api/v1/stock/out.
func (s *Server) StockOut(ctx echo.Context) error {
	return s.recordMovement(ctx, inventory.MovementOut)
}

// ListStockMovements handles GET /api/v1/stock/movements.
func (s *Server) ListStockMovements(ctx echo.Context, params servers.ListStockMovementsParams) error {
	var productID *kernel.UUID
	if params.ProductId != nil {
		id, err := toKernelID(*params.ProductId)
		if err != nil {
			return err
		}
		productID = &id
	}

	query, err := queries.NewListStockMovementsQuery(productID, derefInt(params.Limit))
	if err != nil {
		return err
	}
	movements, err := s.h.ListMovements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.StockMovement, 0, len(movements))
	for _, m := range movements {
		response = append(response, toMovement(m))
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) recordMovement(ctx echo.Context, kind inventory.MovementType) error {
	var body servers.StockMovementInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	productID, err := toKernelID(body.ProductId)
	if err != nil {
		return err
	}
	movementID := kernel.NewUUID()
	cmd, err := commands.NewRecordStockMovementCommand(movementID, productID, kind, body.Qty, deref(body.Note))
	if err != nil {
		return err
	}
	if err = s.h.RecordMovement.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: movementID.Bytes()})
}
