package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"proteseflow/internal/pkg/errs"
)

const maxToothElementsLength = 100

// ToothElements is the list of teeth involved in the work, written the way the
// dentist submits it: "11, 12, 21".
type ToothElements struct {
	items []string
}

// ParseToothElements splits a comma separated list, trimming blanks and dropping
// empty entries. At least one element is required.
func ParseToothElements(raw string) (ToothElements, error) {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}

	te := ToothElements{items: items}
	if err := te.Validate(); err != nil {
		return ToothElements{}, err
	}
	return te, nil
}

// Validate checks that the list is non-empty and fits the stored column.
func (te ToothElements) Validate() error {
	if len(te.items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("tooth_elements", errors.New("inform at least one element, e.g. 11, 12, 21"))
	}
	if n := utf8.RuneCountInString(te.String()); n > maxToothElementsLength {
		return errs.NewValueIsOutOfRangeError("tooth_elements", n, 1, maxToothElementsLength)
	}
	return nil
}

// Items returns a copy of the individual elements.
func (te ToothElements) Items() []string {
	return append([]string(nil), te.items...)
}

// String returns the canonical serialized form.
func (te ToothElements) String() string {
	return strings.Join(te.items, ", ")
}

func (te ToothElements) IsEmpty() bool {
	return len(te.items) == 0
}
