package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreatePick handles POST /api/v1/picks - starts a pick session.
func (s *Server) CreatePick(ctx echo.Context) error {
	var body servers.PickInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	orderID, err := toKernelID(body.OrderId)
	if err != nil {
		return err
	}
	pickID := kernel.NewUUID()
	cmd, err := commands.NewCreatePickCommand(pickID, orderID)
	if err != nil {
		return err
	}
	if err = s.h.CreatePick.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	resp, err := s.pick(ctx, pickID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toPick(resp.Pick))
}

// GetPick handles GET /api/v1/picks/{pickId}.
func (s *Server) GetPick(ctx echo.Context, pickId servers.PickId) error {
	id, err := toKernelID(pickId)
	if err != nil {
		return err
	}
	resp, err := s.pick(ctx, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPickDetail(resp))
}

// ScanBarcode handles POST /api/v1/picks/{pickId}/scan.
func (s *Server) ScanBarcode(ctx echo.Context, pickId servers.PickId) error {
	var body servers.ScanInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernelID(pickId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewScanBarcodeCommand(kernel.NewUUID(), id, body.Barcode)
	if err != nil {
		return err
	}
	res, err := s.h.ScanBarcode.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	var out servers.ScanResult
	out.Success = true
	out.Item.Id = res.Progress.OrderItemID.Bytes()
	out.Item.PickedQty = res.Progress.PickedQty
	out.Item.Quantity = res.Progress.Quantity
	out.OrderCompleted = res.Progress.OrderCompleted
	return ctx.JSON(http.StatusOK, out)
}

// MarkPickPartial handles POST /api/v1/picks/{pickId}/partial.
func (s *Server) MarkPickPartial(ctx echo.Context, pickId servers.PickId) error {
	id, err := toKernelID(pickId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkPickPartialCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.MarkPartial.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondPick(ctx, id)
}

// ResetPick handles POST /api/v1/picks/{pickId}/reset.
func (s *Server) ResetPick(ctx echo.Context, pickId servers.PickId) error {
	id, err := toKernelID(pickId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewResetPickCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.ResetPick.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondPick(ctx, id)
}

// GetPickDeliveryNote handles GET /api/v1/picks/{pickId}/delivery-note.
func (s *Server) GetPickDeliveryNote(ctx echo.Context, pickId servers.PickId, params servers.GetPickDeliveryNoteParams) error {
	id, err := toKernelID(pickId)
	if err != nil {
		return err
	}
	resp, err := s.pick(ctx, id)
	if err != nil {
		return err
	}
	return s.deliveryNote(ctx, resp.Order.ID, params.Format)
}

func (s *Server) pick(ctx echo.Context, id kernel.UUID) (queries.GetPickQueryResponse, error) {
	query, err := queries.NewGetPickQuery(id)
	if err != nil {
		return queries.GetPickQueryResponse{}, err
	}
	return s.h.GetPick.Handle(ctx.Request().Context(), query)
}

func (s *Server) respondPick(ctx echo.Context, id kernel.UUID) error {
	resp, err := s.pick(ctx, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPick(resp.Pick))
}
