package errs

import "errors"

// IsValidation reports whether err carries at least one field-level failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrAlreadyExists)
}

// FieldErrors flattens an error tree (errors.Join, %w wrapping) into messages keyed by
// field name. Errors that are not field-level are skipped. Returns nil when nothing matched.
func FieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)
	collectFields(err, fields)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func collectFields(err error, fields map[string][]string) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *ValueIsRequiredError:
		fields[e.ParamName] = append(fields[e.ParamName], e.Error())
		return
	case *ValueIsInvalidError:
		fields[e.ParamName] = append(fields[e.ParamName], e.Error())
		return
	case *ValueIsOutOfRangeError:
		fields[e.ParamName] = append(fields[e.ParamName], e.Error())
		return
	case *AlreadyExistsError:
		fields[e.ParamName] = append(fields[e.ParamName], e.Error())
		return
	}

	switch u := err.(type) { //nolint:errorlint // walking the tree by hand
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			collectFields(inner, fields)
		}
	case interface{ Unwrap() error }:
		collectFields(u.Unwrap(), fields)
	}
}
