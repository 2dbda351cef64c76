package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smileynet/contacts/internal/addressbook"
	"github.com/smileynet/contacts/internal/record"
)

type sampleContact struct {
	name     string
	phone    string
	birthday time.Time
}

// sampleContacts are the demo entries shown by the list command.
func sampleContacts(loc *time.Location) []sampleContact {
	return []sampleContact{
		{"Num Doe", "123-456-7890", time.Date(1990, time.October, 23, 0, 0, 0, 0, loc)},
		{"Shevelov Olecsander", "096-840-8018", time.Date(1988, time.April, 16, 0, 0, 0, 0, loc)},
		{"Shyrik Nom", "555-555-5555", time.Date(1988, time.February, 19, 0, 0, 0, 0, loc)},
	}
}

// sampleBook builds the demo address book, validating each record against clock.
func sampleBook(clock func() time.Time, log *zap.Logger) (*addressbook.AddressBook, error) {
	book := addressbook.New()
	for _, c := range sampleContacts(clock().Location()) {
		r, err := record.New(c.name,
			record.WithPhone(c.phone),
			record.WithBirthday(c.birthday),
			record.WithClock(clock),
		)
		if err != nil {
			return nil, fmt.Errorf("sample contact %q: %w", c.name, err)
		}
		book.Add(r)
		log.Debug("added contact", zap.String("name", r.Name()))
	}
	return book, nil
}
