package commands

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
)

// AddPackageCommandHandler adds a package to an existing product. Barcodes
// are unique across the whole catalog; a taken barcode fails with
// errs.ErrObjectAlreadyExists.
type AddPackageCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddPackageCommandHandler(uowFactory CatalogUoWFactory) AddPackageCommandHandler {
	return AddPackageCommandHandler{uowFactory: uowFactory}
}

func (h *AddPackageCommandHandler) Handle(ctx context.Context, cmd AddPackageCommand) error {
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

	pkg, err := catalog.NewPackage(cmd.PackageID(), p.ID(), cmd.Barcode(), cmd.UnitsPerScan(), cmd.Details())
	if err != nil {
		return err
	}
	if err = p.AddPackage(pkg); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RemovePackageCommandHandler deletes a package. Scans that referenced it
// keep their barcode.
type RemovePackageCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRemovePackageCommandHandler(uowFactory CatalogUoWFactory) RemovePackageCommandHandler {
	return RemovePackageCommandHandler{uowFactory: uowFactory}
}

func (h *RemovePackageCommandHandler) Handle(ctx context.Context, cmd RemovePackageCommand) error {
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
	pkg, err := repo.GetPackage(ctx, cmd.PackageID())
	if err != nil {
		return err
	}
	p, err := repo.Get(ctx, pkg.ProductID())
	if err != nil {
		return err
	}

	if err = p.RemovePackage(pkg.ID()); err != nil {
		return err
	}
	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
