package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"proteseflow/internal/pkg/errs"
)

// ID identifies a persisted aggregate. The zero value means "not persisted yet";
// the store assigns positive, monotonically increasing values, so ordering by ID
// is ordering by insertion.
//
// Example:
//
//	id, err := kernel.IDFromString(c.Param("id"))
//	if err != nil {
//	    return err
//	}
//	order, err := repo.Get(ctx, id)
type ID int64

// IDFromString parses a decimal identifier such as a path parameter.
// Surrounding whitespace and a leading '#' (as shown in order listings) are accepted.
func IDFromString(s string) (ID, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}

	id := ID(n)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate fails for zero and negative identifiers.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("id", fmt.Errorf("%d is not a persisted identifier", id))
	}
	return nil
}

// IsZero reports whether the aggregate has not been persisted yet.
func (id ID) IsZero() bool {
	return id == 0
}

// IsEqual compares two identifiers.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Int64 returns the raw value for persistence.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
