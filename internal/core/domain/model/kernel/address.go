package kernel

import (
	"fmt"
	"strings"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// CEP digit count, the Brazilian postal code format.
const cepLength = 8

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via the NewAddress constructor")

// Address is an immutable value object holding a resolved postal address:
// the CEP it was looked up by, the city, and the two-letter region (UF) code.
// The zero value is invalid and fails validation - use NewAddress.
//
// Example:
//
//	addr, err := kernel.NewAddress("01001000", "São Paulo", "SP")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(addr) // Output: São Paulo/SP (01001000)
type Address struct { //nolint:recvcheck //using for validation
	cep    string
	city   string
	region string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address from a CEP, city, and region code.
// The CEP must contain exactly eight digits (an optional dash is stripped),
// and city and region must be non-empty. The region code is normalized to
// upper case.
func NewAddress(cep, city, region string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	normalized := strings.ReplaceAll(strings.TrimSpace(cep), "-", "")
	if len(normalized) != cepLength {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("cep",
			fmt.Errorf("%q is not an eight-digit CEP", cep))
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return Address{}, errs.NewValueIsInvalidErrorWithCause("cep",
				fmt.Errorf("%q is not an eight-digit CEP", cep))
		}
	}

	if strings.TrimSpace(city) == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if strings.TrimSpace(region) == "" {
		return Address{}, errs.NewValueIsRequiredError("region")
	}

	address.cep = normalized
	address.city = city
	address.region = strings.ToUpper(strings.TrimSpace(region))
	return address, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// CEP returns the normalized eight-digit postal code.
func (a Address) CEP() string {
	return a.cep
}

// City returns the city name the CEP resolved to.
func (a Address) City() string {
	return a.city
}

// Region returns the upper-cased two-letter region (UF) code.
func (a Address) Region() string {
	return a.region
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.cep == other.cep && a.city == other.city && a.region == other.region
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%s/%s (%s)", a.city, a.region, a.cep)
}
