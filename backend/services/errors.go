package services

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyRegion is returned when a region reaches the allocator with no countries.
	ErrEmptyRegion = errors.New("impossible region state: zero countries")

	// ErrWorkloadOutOfBounds is returned when an allocation leaves a representative
	// outside the 3-7 country window.
	ErrWorkloadOutOfBounds = errors.New("representative workload out of bounds")

	// ErrCountryNotFound is returned when a country id does not exist.
	ErrCountryNotFound = errors.New("country not found")

	// ErrDuplicateCountry is returned when a name is already stored in the same region.
	ErrDuplicateCountry = errors.New("country already exists in region")
)

// DomainError reports an allocation state that valid input can never produce.
// Callers translate it into an internal server error.
type DomainError struct {
	Region string
	Err    error
}

func (e *DomainError) Error() string {
	if e.Region == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("region %q: %s", e.Region, e.Err.Error())
}

func (e *DomainError) Unwrap() error { return e.Err }

// IsDomainError reports whether err carries a DomainError anywhere in its chain.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
