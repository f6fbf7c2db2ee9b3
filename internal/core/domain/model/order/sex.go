package order

import (
	"fmt"
	"strings"

	"proteseflow/internal/pkg/errs"
)

// Sex is the patient's sex as recorded on the prescription.
type Sex int

const (
	UnknownSex Sex = iota
	Male
	Female
)

// ParseSex accepts "M" or "F" in any case.
func ParseSex(code string) (Sex, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "M":
		return Male, nil
	case "F":
		return Female, nil
	default:
		return UnknownSex, errs.NewValueIsInvalidErrorWithCause("patient_sex", fmt.Errorf("%q is not M or F", code))
	}
}

func (s Sex) Validate() error {
	if s != Male && s != Female {
		return errs.NewValueIsRequiredError("patient_sex")
	}
	return nil
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "M"
	case Female:
		return "F"
	default:
		return ""
	}
}
