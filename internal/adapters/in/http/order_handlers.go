package http

import (
	"bytes"
	"fmt"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.OrderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderSummary(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a manual order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.OrderInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, it := range body.Items {
		productID, err := toKernelID(it.ProductId)
		if err != nil {
			return err
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: derefInt(it.Quantity)})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.OrderNumber, deref(body.CustomerName), lines)
	if err != nil {
		return err
	}
	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelID(orderId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderDetail(o))
}

// GetOrderDeliveryNote handles GET /api/v1/orders/{orderId}/delivery-note.
func (s *Server) GetOrderDeliveryNote(ctx echo.Context, orderId servers.OrderId, params servers.GetOrderDeliveryNoteParams) error {
	id, err := toKernelID(orderId)
	if err != nil {
		return err
	}
	return s.deliveryNote(ctx, id, params.Format)
}

func (s *Server) deliveryNote(ctx echo.Context, orderID kernel.UUID, format *servers.Format) error {
	var f string
	if format != nil {
		f = string(*format)
	}
	renderer, err := s.renderers.Lookup(f)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryNoteQuery(orderID)
	if err != nil {
		return err
	}
	note, err := s.h.DeliveryNote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = renderer.Render(&buf, note); err != nil {
		return fmt.Errorf("render delivery note: %w", err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%q", note.FileName(renderer.Format())))
	return ctx.Blob(http.StatusOK, renderer.ContentType(), buf.Bytes())
}
