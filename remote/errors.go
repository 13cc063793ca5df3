package remote

import "fmt"

// OperationError reports a failed voice operation. Op names the
// operation, Message carries the service's message when it sent one,
// and Err holds the transport, status or decode cause for failures
// that never produced a service verdict.
type OperationError struct {
	Op      string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		// The service said no without saying why; at least name
		// the operation.
		return fmt.Sprintf("%s failed", e.Op)
	}
}

func (e *OperationError) Unwrap() error { return e.Err }
