package commands

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/pick"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// ScanBarcodeResult is the progress of the order line the scan counted for.
type ScanBarcodeResult struct {
	Progress services.Progress
}

// ScanBarcodeCommandHandler verifies and records a scan.
//
// The whole read, verify, write and recompute sequence runs in one
// transaction while holding the order's lock, so two scans of the same order
// never interleave. Scans of different orders run in parallel.
//
// Example:
//
//	cmd, err := NewScanBarcodeCommand(kernel.NewUUID(), pickID, "8690000000017")
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrBarcodeIsUnknown), errors.Is(err, errs.ErrBarcodeIsOverScanned):
//	    // operator feedback
//	}
//	fmt.Println(res.Progress.PickedQty, res.Progress.OrderCompleted)
type ScanBarcodeCommandHandler struct {
	uowFactory PickUoWFactory
	locker     OrderLocker
	verifier   services.ScanVerifier
	now        func() time.Time
}

// NewScanBarcodeCommandHandler creates a scan handler.
func NewScanBarcodeCommandHandler(uowFactory PickUoWFactory, locker OrderLocker) ScanBarcodeCommandHandler {
	return ScanBarcodeCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		verifier:   services.NewScanVerifier(),
		now:        time.Now,
	}
}

// Handle processes one scan.
//
// Returns:
//   - errs.ErrObjectNotFound when the pick does not exist
//   - errs.ErrBarcodeIsUnknown when no package carries the barcode
//   - errs.ErrBarcodeIsUnexpected when the order has no line for its product
//   - errs.ErrBarcodeIsOverScanned when the barcode's allowance is used up
//
// Nothing is written when an error is returned.
func (h *ScanBarcodeCommandHandler) Handle(ctx context.Context, cmd ScanBarcodeCommand) (ScanBarcodeResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScanBarcodeResult{}, err
	}

	uow := h.uowFactory.Create()

	found, err := uow.PickRepository().Get(ctx, cmd.PickID())
	if err != nil {
		return ScanBarcodeResult{}, err
	}

	unlock, err := h.locker.Lock(ctx, found.OrderID())
	if err != nil {
		return ScanBarcodeResult{}, err
	}
	defer unlock()

	if err = uow.Begin(ctx); err != nil {
		return ScanBarcodeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, found.OrderID())
	if err != nil {
		return ScanBarcodeResult{}, err
	}

	p, err := uow.PickRepository().Get(ctx, cmd.PickID())
	if err != nil {
		return ScanBarcodeResult{}, err
	}

	pkg, err := uow.ProductRepository().FindPackageByBarcode(ctx, cmd.Barcode())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		pkg = nil
	case err != nil:
		return ScanBarcodeResult{}, err
	}

	item, err := h.verifier.Match(o, cmd.Barcode(), pkg)
	if err != nil {
		return ScanBarcodeResult{}, err
	}

	scans := uow.ScanRepository()

	// allowance of this barcode across every pick of the order
	scanned, err := scans.CountByOrderItemAndBarcode(ctx, item.ID(), cmd.Barcode())
	if err != nil {
		return ScanBarcodeResult{}, err
	}
	if err = h.verifier.Admit(item, pkg, scanned); err != nil {
		return ScanBarcodeResult{}, err
	}

	scan, err := pick.NewScan(cmd.ScanID(), pick.ScanRefs{
		PickID:      p.ID(),
		OrderItemID: item.ID(),
		ProductID:   item.ProductID(),
		PackageID:   pkg.ID(),
	}, cmd.Barcode(), h.now())
	if err != nil {
		return ScanBarcodeResult{}, err
	}
	if err = scans.Add(ctx, scan); err != nil {
		return ScanBarcodeResult{}, err
	}

	// recount including the new scan
	total, err := scans.CountByOrderItem(ctx, item.ID())
	if err != nil {
		return ScanBarcodeResult{}, err
	}

	product, err := uow.ProductRepository().Get(ctx, pkg.ProductID())
	if err != nil {
		return ScanBarcodeResult{}, err
	}

	progress, err := h.verifier.Settle(o, p, item, product, total)
	if err != nil {
		return ScanBarcodeResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return ScanBarcodeResult{}, err
	}
	if err = uow.PickRepository().Update(ctx, p); err != nil {
		return ScanBarcodeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ScanBarcodeResult{}, err
	}

	return ScanBarcodeResult{Progress: progress}, nil
}
