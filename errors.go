package ordersdk

import "fmt"

// OrderError is the generic failure kind every client operation can return.
// Code carries the HTTP status when one was received and 0 when the failure
// happened before or outside the HTTP exchange (transport error, bad JSON,
// undecodable entity). The underlying cause, when any, stays reachable
// through errors.Is/As.
type OrderError struct {
	Message string
	Code    int
	Err     error
}

func (e *OrderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("order api: %s (status %d)", e.Message, e.Code)
	}
	return "order api: " + e.Message
}

func (e *OrderError) Unwrap() error { return e.Err }

// ValidationError reports a 422 response carrying a per-field errors map, or
// a request shape rejected before any network call (Code 0). Callers branch
// on this kind to render field-level feedback.
type ValidationError struct {
	Message string
	Errors  map[string][]string
	Code    int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order api: %s (%d invalid fields)", e.Message, len(e.Errors))
}
