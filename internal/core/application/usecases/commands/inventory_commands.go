package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateLocationCommandIsNotConstructed = errors.New(
		"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
	)
	ErrAssignLocationCommandIsNotConstructed = errors.New(
		"AssignLocationCommand must be created via NewAssignLocationCommand constructor",
	)
	ErrRecordStockMovementCommandIsNotConstructed = errors.New(
		"RecordStockMovementCommand must be created via NewRecordStockMovementCommand constructor",
	)
)

// CreateLocationCommand registers a storage bin. Registering an existing
// code is not an error.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	code       string
	name       string

	guard guard.ConstructorGuard
}

func NewCreateLocationCommand(locationID kernel.UUID, code string, name string) (CreateLocationCommand, error) {
	code = strings.TrimSpace(code)

	var codeErr error
	if code == "" {
		codeErr = ErrCodeIsRequired
	}
	if err := errors.Join(locationID.Validate(), codeErr); err != nil {
		return CreateLocationCommand{}, err
	}

	return CreateLocationCommand{
		locationID: locationID,
		code:       code,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c CreateLocationCommand) Code() string {
	return c.code
}

func (c CreateLocationCommand) Name() string {
	return c.name
}

// AssignLocationCommand sets the on-hand count of a product at a location,
// creating the location when the code is new.
type AssignLocationCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	code      string
	onHand    int

	guard guard.ConstructorGuard
}

func NewAssignLocationCommand(productID kernel.UUID, code string, onHand int) (AssignLocationCommand, error) {
	code = strings.TrimSpace(code)

	var codeErr, onHandErr error
	if code == "" {
		codeErr = ErrCodeIsRequired
	}
	if onHand < 0 {
		onHandErr = ErrQuantityIsInvalid
	}
	if err := errors.Join(productID.Validate(), codeErr, onHandErr); err != nil {
		return AssignLocationCommand{}, err
	}

	return AssignLocationCommand{
		productID: productID,
		code:      code,
		onHand:    onHand,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignLocationCommand) Validate() error {
	return c.guard.Validate(ErrAssignLocationCommandIsNotConstructed)
}

func (c AssignLocationCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AssignLocationCommand) Code() string {
	return c.code
}

func (c AssignLocationCommand) OnHand() int {
	return c.onHand
}

// RecordStockMovementCommand appends to the stock movement journal.
type RecordStockMovementCommand struct { //nolint:recvcheck //using for validation
	movementID kernel.UUID
	productID  kernel.UUID
	kind       inventory.MovementType
	quantity   int
	note       string

	guard guard.ConstructorGuard
}

func NewRecordStockMovementCommand(
	movementID kernel.UUID,
	productID kernel.UUID,
	kind inventory.MovementType,
	quantity int,
	note string,
) (RecordStockMovementCommand, error) {
	var qtyErr error
	if quantity < 1 {
		qtyErr = ErrQuantityIsInvalid
	}
	parsed, kindErr := inventory.ParseMovementType(string(kind))
	if err := errors.Join(movementID.Validate(), productID.Validate(), kindErr, qtyErr); err != nil {
		return RecordStockMovementCommand{}, err
	}

	return RecordStockMovementCommand{
		movementID: movementID,
		productID:  productID,
		kind:       parsed,
		quantity:   quantity,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RecordStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrRecordStockMovementCommandIsNotConstructed)
}

func (c RecordStockMovementCommand) MovementID() kernel.UUID {
	return c.movementID
}

func (c RecordStockMovementCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c RecordStockMovementCommand) Type() inventory.MovementType {
	return c.kind
}

func (c RecordStockMovementCommand) Quantity() int {
	return c.quantity
}

func (c RecordStockMovementCommand) Note() string {
	return c.note
}
