// Package errs provides the error types shared by the warehouse application.
//
// Every error type follows the same pattern:
//   - a sentinel variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// The generic types cover lookups and input validation:
//   - ObjectNotFoundError: a referenced order, pick, product or package is absent
//   - ObjectAlreadyExistsError: a unique key (SKU, barcode, order number) is taken
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: bad input
//
// The scan types describe why a scanned barcode was rejected:
//   - BarcodeIsUnknownError: no package carries the barcode
//   - BarcodeIsUnexpectedError: the barcode's product is not on the order
//   - BarcodeIsOverScannedError: the barcode already reached its allotment
//
// The HTTP adapter maps sentinels to response kinds and status codes, so
// callers should always wrap with %w rather than re-create messages.
package errs
