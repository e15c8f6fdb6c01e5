package utils

import (
	"errors"
	"fmt"
)

// Error taxonomy for the booking and payment flows. Every asynchronous
// operation resolves to one of these; handlers map them to HTTP statuses.
var (
	ErrUnauthenticated    = errors.New("user must be authenticated")
	ErrNotFound           = errors.New("not found")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrPaymentCancelled   = errors.New("payment cancelled by user")
	ErrGatewayFailure     = errors.New("payment gateway reported failure")
	ErrPersistence        = errors.New("persistence error")
	ErrValidation         = errors.New("validation error")
	ErrAlreadySettled     = errors.New("payment already settled")
)

// GatewayFailureError carries the gateway's failure description through the
// failed-settlement path.
func GatewayFailureError(reason string) error {
	return fmt.Errorf("%w: %s", ErrGatewayFailure, reason)
}

// PersistenceError wraps a remote-store write or read failure.
func PersistenceError(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
