package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Product, 0, len(products))
	for _, p := range products {
		response = append(response, toProduct(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.ProductInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewSaveProductCommand(productID, productFields(body))
	if err != nil {
		return err
	}
	if err = s.h.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: productID.Bytes()})
}

// UpdateProduct handles PUT /api/v1/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productId servers.ProductId) error {
	var body servers.ProductInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernelID(productId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSaveProductCommand(id, productFields(body))
	if err != nil {
		return err
	}
	if err = s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/{productId}. Products on an
// order cannot be deleted.
func (s *Server) DeleteProduct(ctx echo.Context, productId servers.ProductId) error {
	id, err := toKernelID(productId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListPackages handles GET /api/v1/products/{productId}/packages.
func (s *Server) ListPackages(ctx echo.Context, productId servers.ProductId) error {
	id, err := toKernelID(productId)
	if err != nil {
		return err
	}
	query, err := queries.NewListPackagesQuery(id)
	if err != nil {
		return err
	}
	packages, err := s.h.ListPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPackages(packages))
}

// AddPackage handles POST /api/v1/products/{productId}/packages.
func (s *Server) AddPackage(ctx echo.Context, productId servers.ProductId) error {
	var body servers.PackageInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernelID(productId)
	if err != nil {
		return err
	}
	packageID := kernel.NewUUID()
	cmd, err := commands.NewAddPackageCommand(packageID, id, commands.PackageFields{
		Barcode:      body.Barcode,
		UnitsPerScan: derefInt(body.UnitsPerScan),
		Number:       deref(body.PackageNumber),
		Content:      deref(body.Content),
		WeightKg:     deref(body.WeightKg),
		VolumeM3:     deref(body.VolumeM3),
	})
	if err != nil {
		return err
	}
	if err = s.h.AddPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: packageID.Bytes()})
}

// DeletePackage handles DELETE /api/v1/packages/{packageId}.
func (s *Server) DeletePackage(ctx echo.Context, packageId openapi_types.UUID) error {
	id, err := toKernelID(packageId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemovePackageCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.RemovePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func productFields(body servers.ProductInput) commands.ProductFields {
	return commands.ProductFields{
		SKU:         body.Sku,
		Name:        body.Name,
		Description: deref(body.Description),
		MainBarcode: deref(body.MainBarcode),
		Price:       deref(body.Price),
	}
}
