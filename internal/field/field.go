// Package field implements validated contact field values.
//
// A Field is a tagged variant over a closed set of kinds. Each kind owns its
// validation rule; Validate dispatches on the kind.
package field

import (
	"fmt"
	"time"
)

// Kind identifies which variant a Field holds.
type Kind string

const (
	KindPlain    Kind = "plain"
	KindPhone    Kind = "phone"
	KindBirthday Kind = "birthday"
)

// DateLayout is the textual layout used for birthday values.
const DateLayout = "2006-01-02"

// Phone length limits, inclusive.
const (
	PhoneMinLen = 7
	PhoneMaxLen = 15
)

// MinBirthYear is the earliest accepted year of birth.
const MinBirthYear = 1900

// Field holds a single value of a given kind.
type Field struct {
	kind  Kind
	value any
}

// New wraps value without validating it. Use the kind-specific constructors
// to get a validated Field.
func New(kind Kind, value any) Field {
	return Field{kind: kind, value: value}
}

// NewPlain returns a plain field. Plain fields have no validation rules.
func NewPlain(value any) Field {
	return New(KindPlain, value)
}

// NewPhone returns a validated phone field.
func NewPhone(value any) (Field, error) {
	f := New(KindPhone, value)
	if err := f.Validate(time.Time{}); err != nil {
		return Field{}, err
	}
	return f, nil
}

// NewBirthday returns a birthday field validated against now.
func NewBirthday(value any, now time.Time) (Field, error) {
	f := New(KindBirthday, value)
	if err := f.Validate(now); err != nil {
		return Field{}, err
	}
	return f, nil
}

// Kind returns the field's variant.
func (f Field) Kind() Kind { return f.kind }

// Value returns the wrapped value.
func (f Field) Value() any { return f.value }

// Time returns the wrapped value as a time.Time, if it is one.
func (f Field) Time() (time.Time, bool) {
	t, ok := f.value.(time.Time)
	return t, ok
}

// String renders the value's own textual form. Dates render as YYYY-MM-DD.
func (f Field) String() string {
	switch v := f.value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format(DateLayout)
	default:
		return fmt.Sprint(v)
	}
}

// Validate checks the value against the rules of the field's kind and
// returns the first violated rule as a *ValidationError. now is only
// consulted by date-based kinds.
func (f Field) Validate(now time.Time) error {
	switch f.kind {
	case KindPhone:
		return validatePhone(f.value)
	case KindBirthday:
		return validateBirthday(f.value, now)
	default:
		return nil
	}
}

func validatePhone(value any) error {
	s, ok := value.(string)
	if !ok {
		return newError(KindPhone, InvalidType, "phone must be a string, got %T", value)
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' {
			return newError(KindPhone, InvalidFormat, "phone number can only contain digits and hyphens, got %q", r)
		}
	}

	// Only ASCII survives the character check, so byte length is character length.
	if n := len(s); n < PhoneMinLen || n > PhoneMaxLen {
		return newError(KindPhone, OutOfRange, "phone number must be between %d and %d characters long, got %d", PhoneMinLen, PhoneMaxLen, n)
	}
	return nil
}

func validateBirthday(value any, now time.Time) error {
	t, ok := value.(time.Time)
	if !ok {
		return newError(KindBirthday, InvalidType, "birthday must be a date, got %T", value)
	}

	if t.After(now) {
		return newError(KindBirthday, OutOfRange, "birthday cannot be in the future: %s", t.Format(DateLayout))
	}

	if t.Year() < MinBirthYear {
		return newError(KindBirthday, OutOfRange, "year of birth cannot be earlier than %d, got %d", MinBirthYear, t.Year())
	}

	if !ProjectsOnto(t, now.Year()) {
		return newError(KindBirthday, InvalidFormat, "invalid day or month for year %d: %s", now.Year(), t.Format("01-02"))
	}
	return nil
}

// ProjectsOnto reports whether t's month and day form a real calendar day in
// year. Only Feb 29 can fail.
func ProjectsOnto(t time.Time, year int) bool {
	p := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return p.Month() == t.Month() && p.Day() == t.Day()
}
