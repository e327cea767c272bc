package kernel

import (
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

// Address identifies an account: a shipment sender or receiver, a staking owner,
// or a custody account held by one of the ledgers.
//
// Addresses are 20-byte values written as 0x-prefixed hex. Parsing is case
// insensitive; String returns the EIP-55 checksummed form, which is also the
// canonical key used for storage and locking.
type Address struct {
	addr common.Address
}

// ParseAddress validates s and returns the corresponding Address.
// The zero address is rejected because it cannot own or receive value.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, errs.NewInvalidAddressError("address", "empty")
	}
	if !common.IsHexAddress(s) {
		return Address{}, errs.NewInvalidAddressError("address", s+" is not a 20-byte hex address")
	}

	a := Address{addr: common.HexToAddress(s)}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// MustParseAddress is ParseAddress for constants and tests; it panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the checksummed hex form.
func (a Address) String() string {
	return a.addr.Hex()
}

// IsEqual reports whether both addresses denote the same account.
func (a Address) IsEqual(other Address) bool {
	return a.addr == other.addr
}

// IsZero reports whether a is the zero value.
func (a Address) IsZero() bool {
	return a.addr == (common.Address{})
}

// Validate rejects the zero address.
func (a Address) Validate() error {
	if a.IsZero() {
		return errs.NewInvalidAddressError("address", "zero address")
	}
	return nil
}
