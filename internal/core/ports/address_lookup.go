package ports

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/kernel"
)

// ErrAddressNotFound is returned by AddressLookup implementations when the
// postal code service answers but does not know the code. Transport failures
// are returned as distinct errors so callers can tell a bad postal code from
// a broken lookup service.
var ErrAddressNotFound = errors.New("address not found for postal code")

// AddressLookup resolves a postal code to a full address.
// Implementations wrap an external postal code service.
type AddressLookup interface {
	// Lookup resolves the given postal code to an address.
	// Returns ErrAddressNotFound when the service reports an unknown code.
	Lookup(ctx context.Context, postalCode string) (kernel.Address, error)
}
