// Package record implements a contact record: a name with an optional phone
// and an optional birthday.
package record

import (
	"strings"
	"time"

	"github.com/smileynet/contacts/internal/field"
)

// Record is an immutable contact entry. Construct with New.
type Record struct {
	name     string
	phone    *field.Field
	birthday *field.Field
}

type options struct {
	clock    func() time.Time
	phone    *string
	birthday *time.Time
}

// Option configures a Record under construction.
type Option func(*options)

// WithPhone attaches a phone number. It is validated by New.
func WithPhone(phone string) Option {
	return func(o *options) { o.phone = &phone }
}

// WithBirthday attaches a birthday. It is validated by New against the clock.
func WithBirthday(birthday time.Time) Option {
	return func(o *options) { o.birthday = &birthday }
}

// WithClock sets the time source used to validate the birthday.
// Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// New builds a Record, validating every field. It returns the first
// *field.ValidationError encountered and no Record.
func New(name string, opts ...Option) (*Record, error) {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, field.NewValidationError("name", field.InvalidFormat, "name is required")
	}

	r := &Record{name: name}

	if o.phone != nil {
		p, err := field.NewPhone(*o.phone)
		if err != nil {
			return nil, err
		}
		r.phone = &p
	}

	if o.birthday != nil {
		b, err := field.NewBirthday(*o.birthday, o.clock())
		if err != nil {
			return nil, err
		}
		r.birthday = &b
	}

	return r, nil
}

// Name returns the contact's name.
func (r *Record) Name() string { return r.name }

// Phone returns the phone field, if present.
func (r *Record) Phone() (field.Field, bool) {
	if r.phone == nil {
		return field.Field{}, false
	}
	return *r.phone, true
}

// Birthday returns the birthday field, if present.
func (r *Record) Birthday() (field.Field, bool) {
	if r.birthday == nil {
		return field.Field{}, false
	}
	return *r.birthday, true
}

// DaysToBirthday returns the number of whole calendar days from now until the
// next occurrence of the birthday, and false if the record has no birthday.
// On the anniversary itself the result is 0. A Feb 29 birthday falls on
// Mar 1 in non-leap years.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	bd, ok := r.birthday.Time()
	if !ok {
		return 0, false
	}
	return DaysUntil(bd, now), true
}

// DaysUntil returns whole calendar days from now until the next anniversary
// of bd. Both dates are compared on the calendar of now's location.
func DaysUntil(bd, now time.Time) int {
	today := civilDate(now.Year(), now.Month(), now.Day())

	next := civilDate(now.Year(), bd.Month(), bd.Day())
	if next.Before(today) {
		next = civilDate(now.Year()+1, bd.Month(), bd.Day())
	}

	return int(next.Sub(today).Hours() / 24)
}

// civilDate returns midnight UTC of the given calendar day so that
// subtraction is free of DST shifts. Out-of-range days normalize.
func civilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
