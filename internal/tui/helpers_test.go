package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"go.uber.org/zap"

	"github.com/smileynet/contacts/internal/addressbook"
	"github.com/smileynet/contacts/internal/record"
)

// testNow is Oct 24 of a year followed by a non-leap year.
var testNow = time.Date(2025, time.October, 24, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func nopLogger() *zap.Logger { return zap.NewNop() }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleBook returns a book with the three demo contacts.
func sampleBook(t *testing.T) *addressbook.AddressBook {
	t.Helper()
	b := addressbook.New()
	for _, s := range []struct {
		name  string
		phone string
		bd    time.Time
	}{
		{"Num Doe", "123-456-7890", date(1990, time.October, 23)},
		{"Shevelov Olecsander", "096-840-8018", date(1988, time.April, 16)},
		{"Shyrik Nom", "555-555-5555", date(1988, time.February, 19)},
	} {
		r, err := record.New(s.name,
			record.WithPhone(s.phone),
			record.WithBirthday(s.bd),
			record.WithClock(fixedClock),
		)
		if err != nil {
			t.Fatalf("record.New(%q) error = %v", s.name, err)
		}
		b.Add(r)
	}
	return b
}

func mustIterator(t *testing.T, b *addressbook.AddressBook, size int) *addressbook.Iterator {
	t.Helper()
	it, err := b.Iterator(size)
	if err != nil {
		t.Fatal(err)
	}
	return it
}

// countingSource wraps a PageSource and counts pulls.
type countingSource struct {
	src   PageSource
	pulls int
}

func (c *countingSource) Next() (addressbook.Page, bool) {
	c.pulls++
	return c.src.Next()
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// collectKeys flattens the key names of bindings.
func collectKeys(bindings []key.Binding) []string {
	var keys []string
	for _, b := range bindings {
		keys = append(keys, b.Keys()...)
	}
	return keys
}

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}
