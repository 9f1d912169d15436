package service

// OperationObserver records the outcome of account operations.
type OperationObserver interface {
	// ObserveOperation counts one call of operation; err is nil on success.
	ObserveOperation(operation string, err error)
}
