package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInstances is returned when a retrieval yields zero usable
	// instance records; fatal for that call.
	ErrNoInstances = errors.New("no instances in retrieved metadata")

	// ErrServerNotFound is returned when a named server descriptor is not
	// configured.
	ErrServerNotFound = errors.New("server not found")

	// ErrMissingBulkDataURI is returned when a palette channel attribute
	// carries no bulk data reference to fetch.
	ErrMissingBulkDataURI = errors.New("attribute has no bulk data URI")
)

// DecodeError reports a bulk data buffer too short (or otherwise malformed)
// for the lookup table it is supposed to contain. It is distinct from a
// transport error: the fetch succeeded but the payload is inconsistent with
// its descriptor.
type DecodeError struct {
	Tag     string
	Entries int
	Bits    int
	Got     int
}

func (e *DecodeError) Error() string {
	if e.Bits == 0 {
		return fmt.Sprintf("decode palette channel %s: malformed lookup table descriptor", e.Tag)
	}
	return fmt.Sprintf("decode palette channel %s: need %d entries at %d bits, got %d bytes", e.Tag, e.Entries, e.Bits, e.Got)
}
