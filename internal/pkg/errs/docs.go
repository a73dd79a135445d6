// Package errs provides the error taxonomy shared by the fulfillment core.
//
// Validation failures use ValueIsRequiredError, ValueIsInvalidError and
// ValueIsOutOfRangeError. Missing aggregates and collaborator records use
// ObjectNotFoundError. Operations that the current state forbids (illegal
// status transitions, a delivery already taken) use ConflictError, and
// cross-tenant or cross-partner access uses PermissionDeniedError.
//
// Each type pairs a sentinel (ErrValueIsInvalid, ErrConflict, ...) with a
// struct carrying the details, and unwraps to the sentinel so callers can
// classify with errors.Is:
//
//	if errors.Is(err, errs.ErrConflict) {
//	    return http.StatusConflict
//	}
package errs
