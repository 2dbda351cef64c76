// Package tui displays address book pages, either as plain text or as an
// interactive Bubble Tea pager.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/smileynet/contacts/internal/addressbook"
	"github.com/smileynet/contacts/internal/record"
)

// RenderRecord writes the text block for one record. The phone and birthday
// lines are omitted when the record has no such field.
func RenderRecord(w io.Writer, r *record.Record, now time.Time) error {
	if _, err := fmt.Fprintf(w, "Name: %s\n", r.Name()); err != nil {
		return err
	}
	if p, ok := r.Phone(); ok {
		if _, err := fmt.Fprintf(w, "Phone: %s\n", p); err != nil {
			return err
		}
	}
	if days, ok := r.DaysToBirthday(now); ok {
		if _, err := fmt.Fprintf(w, "Days to Birthday: %d\n", days); err != nil {
			return err
		}
	}
	return nil
}

// RenderPage writes every record of p followed by one blank line.
func RenderPage(w io.Writer, p addressbook.Page, now time.Time) error {
	for _, r := range p.Records {
		if err := RenderRecord(w, r, now); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
