package services_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/pick"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floor keeps an in-memory scan log and drives the verifier the same way
// the scan command does.
type floor struct {
	t        *testing.T
	verifier services.ScanVerifier
	order    *order.Order
	products map[string]*catalog.Product
	packages map[string]*catalog.Package
	// scans per order item and barcode, across every pick
	log map[kernel.UUID]map[string]int
}

type packageSpec struct {
	barcode string
	units   int
}

func newFloor(t *testing.T) *floor {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "1001", "Customer")
	require.NoError(t, err)
	return &floor{
		t:        t,
		verifier: services.NewScanVerifier(),
		order:    o,
		products: map[string]*catalog.Product{},
		packages: map[string]*catalog.Package{},
		log:      map[kernel.UUID]map[string]int{},
	}
}

// product registers a catalog product without putting it on the order.
func (f *floor) product(sku string, pkgs ...packageSpec) *catalog.Product {
	f.t.Helper()
	s, err := kernel.NewSKU(sku)
	require.NoError(f.t, err)
	p, err := catalog.NewProduct(kernel.NewUUID(), s, sku)
	require.NoError(f.t, err)
	for _, def := range pkgs {
		b, err := kernel.NewBarcode(def.barcode)
		require.NoError(f.t, err)
		pkg, err := catalog.NewPackage(kernel.NewUUID(), p.ID(), b, def.units, catalog.PackageDetails{})
		require.NoError(f.t, err)
		require.NoError(f.t, p.AddPackage(pkg))
		f.packages[def.barcode] = pkg
	}
	f.products[p.ID().String()] = p
	return p
}

// line adds a product to the order.
func (f *floor) line(p *catalog.Product, quantity int) *order.Item {
	f.t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), f.order.ID(), p.ID(), p.SKU(), p.Name(), quantity)
	require.NoError(f.t, err)
	require.NoError(f.t, f.order.AddItem(item))
	return item
}

func (f *floor) newPick() *pick.Pick {
	f.t.Helper()
	p, err := pick.NewPick(kernel.NewUUID(), f.order.ID(), time.Now())
	require.NoError(f.t, err)
	return p
}

func (f *floor) scan(p *pick.Pick, raw string) (services.Progress, error) {
	f.t.Helper()
	barcode, err := kernel.NewBarcode(raw)
	require.NoError(f.t, err)

	item, err := f.verifier.Match(f.order, barcode, f.packages[raw])
	if err != nil {
		return services.Progress{}, err
	}
	pkg := f.packages[raw]

	byBarcode := f.log[item.ID()]
	if byBarcode == nil {
		byBarcode = map[string]int{}
		f.log[item.ID()] = byBarcode
	}
	if err := f.verifier.Admit(item, pkg, byBarcode[raw]); err != nil {
		return services.Progress{}, err
	}
	byBarcode[raw]++

	total := 0
	for _, n := range byBarcode {
		total += n
	}
	return f.verifier.Settle(f.order, p, item, f.products[item.ProductID().String()], total)
}

func TestScanVerifier_SinglePackageScenario(t *testing.T) {
	f := newFloor(t)
	x := f.product("X", packageSpec{"B1", 1})
	item := f.line(x, 2)
	p := f.newPick()

	progress, err := f.scan(p, "B1")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.PickedQty)
	assert.False(t, progress.OrderCompleted)
	assert.Equal(t, order.StatusOpen, f.order.Status())

	progress, err = f.scan(p, "B1")
	require.NoError(t, err)
	assert.Equal(t, 2, progress.PickedQty)
	assert.Equal(t, 2, progress.Quantity)
	assert.True(t, progress.OrderCompleted)
	assert.True(t, item.ID().IsEqual(progress.OrderItemID))
	assert.Equal(t, order.StatusFulfilled, f.order.Status())
	assert.Equal(t, pick.StatusCompleted, p.Status())

	_, err = f.scan(p, "B1")
	require.ErrorIs(t, err, errs.ErrBarcodeIsOverScanned)
	assert.Equal(t, 2, item.PickedQty())
}

func TestScanVerifier_TwoPackageScenario(t *testing.T) {
	f := newFloor(t)
	y := f.product("Y", packageSpec{"B1", 1}, packageSpec{"B2", 1})
	f.line(y, 1)
	p := f.newPick()

	progress, err := f.scan(p, "B1")
	require.NoError(t, err)
	assert.Equal(t, 0, progress.PickedQty)
	assert.Equal(t, 1, progress.TotalScans)
	assert.Equal(t, 2, progress.ScansPerSet)
	assert.False(t, progress.OrderCompleted)

	progress, err = f.scan(p, "B2")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.PickedQty)
	assert.True(t, progress.OrderCompleted)
}

func TestScanVerifier_RejectsUnknownAndUnexpected(t *testing.T) {
	f := newFloor(t)
	onOrder := f.product("ON", packageSpec{"ON-1", 1})
	f.product("OFF", packageSpec{"OFF-1", 1})
	f.line(onOrder, 1)
	p := f.newPick()

	_, err := f.scan(p, "NOPE")
	require.ErrorIs(t, err, errs.ErrBarcodeIsUnknown)

	_, err = f.scan(p, "OFF-1")
	require.ErrorIs(t, err, errs.ErrBarcodeIsUnexpected)
	assert.Contains(t, err.Error(), "order 1001")

	assert.Empty(t, f.log)
}

func TestScanVerifier_AllowancePerBarcode(t *testing.T) {
	for _, tc := range []struct {
		name     string
		units    []int
		quantity int
	}{
		{"one package", []int{1}, 3},
		{"mixed units", []int{1, 2, 3}, 2},
		{"heavy package", []int{4}, 1},
		{"many small", []int{1, 1, 1, 1}, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFloor(t)
			specs := make([]packageSpec, len(tc.units))
			for i, u := range tc.units {
				specs[i] = packageSpec{barcode: string(rune('A'+i)) + "-code", units: u}
			}
			f.line(f.product("P", specs...), tc.quantity)
			p := f.newPick()

			for _, def := range specs {
				allowed := def.units * tc.quantity
				for i := 0; i < allowed; i++ {
					_, err := f.scan(p, def.barcode)
					require.NoError(t, err, "scan %d of %s", i+1, def.barcode)
				}
				_, err := f.scan(p, def.barcode)
				require.ErrorIs(t, err, errs.ErrBarcodeIsOverScanned, "scan %d of %s", allowed+1, def.barcode)
			}

			assert.Equal(t, order.StatusFulfilled, f.order.Status())
		})
	}
}

func TestScanVerifier_PickedSetsFollowTotalScans(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 50; round++ {
		f := newFloor(t)
		specs := []packageSpec{{"S1", 1 + rng.IntN(3)}, {"S2", 1 + rng.IntN(3)}, {"S3", 1 + rng.IntN(2)}}
		scansPerSet := specs[0].units + specs[1].units + specs[2].units
		quantity := 1 + rng.IntN(4)
		item := f.line(f.product("R", specs...), quantity)
		picks := []*pick.Pick{f.newPick(), f.newPick(), f.newPick()}

		accepted := 0
		for step := 0; step < 40; step++ {
			def := specs[rng.IntN(len(specs))]
			progress, err := f.scan(picks[rng.IntN(len(picks))], def.barcode)
			if err != nil {
				require.ErrorIs(t, err, errs.ErrBarcodeIsOverScanned)
				continue
			}
			accepted++
			want := min(quantity, accepted/scansPerSet)
			require.Equal(t, want, progress.PickedQty, "round %d step %d", round, step)
			require.Equal(t, want, item.PickedQty())
			require.Equal(t, item.IsFullyPicked(), progress.OrderCompleted)
		}
	}
}

func TestScanVerifier_FulfilledOnlyAfterLastItem(t *testing.T) {
	f := newFloor(t)
	a := f.product("A", packageSpec{"A-1", 1})
	b := f.product("B", packageSpec{"B-1", 1}, packageSpec{"B-2", 2})
	f.line(a, 1)
	f.line(b, 1)
	first := f.newPick()
	second := f.newPick()

	for _, code := range []string{"A-1", "B-1", "B-2"} {
		progress, err := f.scan(first, code)
		require.NoError(t, err)
		require.False(t, progress.OrderCompleted, code)
		require.Equal(t, order.StatusOpen, f.order.Status())
	}

	progress, err := f.scan(second, "B-2")
	require.NoError(t, err)
	assert.True(t, progress.OrderCompleted)
	assert.Equal(t, order.StatusFulfilled, f.order.Status())
	assert.Equal(t, pick.StatusCompleted, second.Status())
	assert.Equal(t, pick.StatusActive, first.Status())
}

func TestScanVerifier_AggregationArtifact(t *testing.T) {
	f := newFloor(t)
	y := f.product("Y", packageSpec{"B1", 1}, packageSpec{"B2", 1})
	f.line(y, 2)
	p := f.newPick()

	_, err := f.scan(p, "B1")
	require.NoError(t, err)
	progress, err := f.scan(p, "B1")
	require.NoError(t, err)

	// Two scans of B1 and none of B2 still count as one set.
	assert.Equal(t, 1, progress.PickedQty)
}

func TestScanVerifier_Settle_Validation(t *testing.T) {
	f := newFloor(t)
	x := f.product("X", packageSpec{"B1", 1})
	empty := f.product("EMPTY")
	item := f.line(x, 1)
	emptyItem := f.line(empty, 1)
	p := f.newPick()
	v := services.NewScanVerifier()

	t.Run("pick of another order", func(t *testing.T) {
		other, err := pick.NewPick(kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		_, err = v.Settle(f.order, other, item, x, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("product does not match item", func(t *testing.T) {
		_, err := v.Settle(f.order, p, item, empty, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("product without packages", func(t *testing.T) {
		_, err := v.Settle(f.order, p, emptyItem, empty, 1)
		require.ErrorIs(t, err, catalog.ErrProductHasNoPackages)
	})

	t.Run("negative counts", func(t *testing.T) {
		_, err := v.Settle(f.order, p, item, x, -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, v.Admit(item, f.packages["B1"], -1), errs.ErrValueIsOutOfRange)
	})
}

func TestPickedSets(t *testing.T) {
	assert.Equal(t, 0, services.PickedSets(3, 5, 6))
	assert.Equal(t, 1, services.PickedSets(3, 11, 6))
	assert.Equal(t, 3, services.PickedSets(3, 100, 6))
	assert.Equal(t, 6, services.AllowedScans(2, 3))
}
