// Package http is the REST transport of the service. Server implements the
// generated servers.ServerInterface on top of the command and query
// handlers.
package http

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/ports"
	"warehouse/internal/generated/servers"
)

// RendererRegistry resolves a delivery note format to a renderer.
type RendererRegistry interface {
	Lookup(format string) (ports.DocumentRenderer, error)
}

// HealthCheck reports whether the database answers.
type HealthCheck func(ctx context.Context) error

// Handlers are the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreatePick     commands.CreatePickCommandHandler
	ScanBarcode    commands.ScanBarcodeCommandHandler
	MarkPartial    commands.MarkPickPartialCommandHandler
	ResetPick      commands.ResetPickCommandHandler
	CreateOrder    commands.CreateOrderCommandHandler
	CreateProduct  commands.CreateProductCommandHandler
	UpdateProduct  commands.UpdateProductCommandHandler
	DeleteProduct  commands.DeleteProductCommandHandler
	AddPackage     commands.AddPackageCommandHandler
	RemovePackage  commands.RemovePackageCommandHandler
	CreateLocation commands.CreateLocationCommandHandler
	AssignLocation commands.AssignLocationCommandHandler
	RecordMovement commands.RecordStockMovementCommandHandler
	Sync           commands.SyncCommandHandler

	// Query handlers
	GetPick              queries.GetPickQueryHandler
	ListOrders           queries.ListOrdersQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	DeliveryNote         queries.GetDeliveryNoteQueryHandler
	ListProducts         queries.ListProductsQueryHandler
	ListPackages         queries.ListPackagesQueryHandler
	ListLocations        queries.ListLocationsQueryHandler
	ListProductLocations queries.ListProductLocationsQueryHandler
	ListMovements        queries.ListStockMovementsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h         Handlers
	renderers RendererRegistry
	health    HealthCheck
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, renderers RendererRegistry, health HealthCheck) *Server {
	return &Server{h: handlers, renderers: renderers, health: health}
}
