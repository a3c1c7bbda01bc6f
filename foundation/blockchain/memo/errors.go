package memo

import (
	"errors"
	"fmt"
)

// IdentityError is returned when the ledger rejects an identity.
type IdentityError struct {
	Identity string
	Err      error
}

// Error implements the error interface.
func (ie *IdentityError) Error() string {
	return fmt.Sprintf("invalid identity %q: %s", ie.Identity, ie.Err)
}

// Unwrap returns the error reported by the ledger.
func (ie *IdentityError) Unwrap() error {
	return ie.Err
}

// IsIdentityError checks if an error of type IdentityError exists.
func IsIdentityError(err error) bool {
	var ie *IdentityError
	return errors.As(err, &ie)
}
