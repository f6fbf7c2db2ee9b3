package order

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"proteseflow/internal/pkg/errs"
)

const (
	maxPatientNameLength = 100
	maxServiceTypeLength = 100
	maxColorLength       = 50
	maxNotesLength       = 2000
)

// Details holds the case information of an order: everything but owner, status and
// files. The zero value is invalid; build one with NewDetails.
type Details struct {
	PatientName   string
	PatientSex    Sex
	ServiceType   string
	ToothElements ToothElements
	Color         string
	DueDate       *time.Time
	Notes         string
}

// NewDetails trims the free-text fields, truncates the due date to a calendar day and
// validates the result. All field errors are reported together.
func NewDetails(d Details) (Details, error) {
	d.PatientName = strings.TrimSpace(d.PatientName)
	d.ServiceType = strings.TrimSpace(d.ServiceType)
	d.Color = strings.TrimSpace(d.Color)
	d.Notes = strings.TrimSpace(d.Notes)
	if d.DueDate != nil {
		day := time.Date(d.DueDate.Year(), d.DueDate.Month(), d.DueDate.Day(), 0, 0, 0, 0, time.UTC)
		d.DueDate = &day
	}

	if err := d.Validate(); err != nil {
		return Details{}, err
	}
	return d, nil
}

func (d Details) Validate() error {
	return errors.Join(
		requiredText("patient_name", d.PatientName, maxPatientNameLength),
		d.PatientSex.Validate(),
		requiredText("service_type", d.ServiceType, maxServiceTypeLength),
		d.ToothElements.Validate(),
		optionalText("color", d.Color, maxColorLength),
		optionalText("notes", d.Notes, maxNotesLength),
	)
}

func requiredText(field, value string, maxLen int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return optionalText(field, value, maxLen)
}

func optionalText(field, value string, maxLen int) error {
	if n := utf8.RuneCountInString(value); n > maxLen {
		return errs.NewValueIsOutOfRangeError(field, n, 0, maxLen)
	}
	return nil
}
