// Package addressbook implements an ordered collection of contact records
// with lazy page-wise iteration.
//
// An AddressBook is not safe for concurrent use; callers that share one must
// synchronize Add with iteration themselves.
package addressbook

import (
	"errors"
	"fmt"
	"iter"

	"github.com/smileynet/contacts/internal/record"
)

// ErrInvalidArgument indicates a non-positive page size.
var ErrInvalidArgument = errors.New("addressbook: invalid argument")

// AddressBook holds records in insertion order. Duplicates are allowed.
type AddressBook struct {
	records []*record.Record
}

// New returns an empty AddressBook.
func New() *AddressBook {
	return &AddressBook{}
}

// Add appends r. The book performs no validation; records validate
// themselves on construction.
func (b *AddressBook) Add(r *record.Record) {
	b.records = append(b.records, r)
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns a copy of the record sequence.
func (b *AddressBook) Records() []*record.Record {
	return append([]*record.Record(nil), b.records...)
}

// PageCount returns how many pages an iterator of the given size yields over
// the current contents.
func (b *AddressBook) PageCount(pageSize int) (int, error) {
	if err := checkPageSize(pageSize); err != nil {
		return 0, err
	}
	n := len(b.records)
	if n == 0 {
		return 0, nil
	}
	return (n-1)/pageSize + 1, nil
}

// Page is one batch of records. Number is 1-based.
type Page struct {
	Number  int
	Records []*record.Record
}

// Iterator produces pages on demand. It is finite; create a new one to start
// over.
type Iterator struct {
	book   *AddressBook
	size   int
	offset int
	number int
}

// Iterator returns a page iterator starting at the first record.
func (b *AddressBook) Iterator(pageSize int) (*Iterator, error) {
	if err := checkPageSize(pageSize); err != nil {
		return nil, err
	}
	return &Iterator{book: b, size: pageSize}, nil
}

// Next returns the next page, or false when the records are exhausted.
// The page's slice is a copy; the records themselves are shared.
func (it *Iterator) Next() (Page, bool) {
	n := len(it.book.records)
	if it.offset >= n {
		return Page{}, false
	}

	end := it.offset + min(it.size, n-it.offset)
	recs := append([]*record.Record(nil), it.book.records[it.offset:end]...)
	it.offset = end
	it.number++

	return Page{Number: it.number, Records: recs}, true
}

// Pages returns a range-over-func sequence of pages of the given size.
// Each range statement starts a fresh iteration.
func (b *AddressBook) Pages(pageSize int) (iter.Seq[Page], error) {
	if err := checkPageSize(pageSize); err != nil {
		return nil, err
	}
	return func(yield func(Page) bool) {
		it := &Iterator{book: b, size: pageSize}
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}, nil
}

func checkPageSize(pageSize int) error {
	if pageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	return nil
}
