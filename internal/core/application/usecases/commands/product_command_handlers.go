package commands

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
)

// CreateProductCommandHandler adds a product without packages.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectAlreadyExists for a taken SKU.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := catalog.NewProduct(cmd.ProductID(), cmd.SKU(), cmd.Name())
	if err != nil {
		return err
	}
	if err = applyProductFields(p, cmd); err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateProductCommandHandler replaces the maintained attributes of a
// product. Packages, external references and inventory are kept.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.ChangeSKU(cmd.SKU()); err != nil {
		return err
	}
	if err = p.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = applyProductFields(p, cmd); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteProductCommandHandler removes a product. Order lines keep their
// copied SKU and name but lose the product reference, so products that are
// on an order cannot be deleted.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyProductFields(p *catalog.Product, cmd SaveProductCommand) error {
	p.SetDescription(cmd.Description())
	p.SetMainBarcode(cmd.MainBarcode())
	return p.SetPrice(cmd.Price())
}
