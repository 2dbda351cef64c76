package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/smileynet/contacts/internal/addressbook"
	"github.com/smileynet/contacts/internal/record"
)

func TestRenderPage_FullRecords(t *testing.T) {
	// Given: the sample book on Oct 24, 2025
	it := mustIterator(t, sampleBook(t), 2)

	// When: both pages are rendered
	var buf bytes.Buffer
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		if err := RenderPage(&buf, p, testNow); err != nil {
			t.Fatalf("RenderPage() error = %v", err)
		}
	}

	// Then: each page ends with a blank line
	want := "Name: Num Doe\n" +
		"Phone: 123-456-7890\n" +
		"Days to Birthday: 364\n" +
		"Name: Shevelov Olecsander\n" +
		"Phone: 096-840-8018\n" +
		"Days to Birthday: 174\n" +
		"\n" +
		"Name: Shyrik Nom\n" +
		"Phone: 555-555-5555\n" +
		"Days to Birthday: 118\n" +
		"\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderRecord_OmitsAbsentFields(t *testing.T) {
	r, err := record.New("Lonely")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := RenderRecord(&buf, r, testNow); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "Name: Lonely\n"; got != want {
		t.Errorf("RenderRecord() = %q, want %q", got, want)
	}
}

func TestRenderRecord_PhoneWithoutBirthday(t *testing.T) {
	r, err := record.New("Caller", record.WithPhone("555-0100"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := RenderRecord(&buf, r, testNow); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "Name: Caller\nPhone: 555-0100\n"; got != want {
		t.Errorf("RenderRecord() = %q, want %q", got, want)
	}
}

func TestRenderPage_EmptyPage(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, addressbook.Page{Number: 1}, testNow); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\n" {
		t.Errorf("RenderPage(empty) = %q, want a single blank line", buf.String())
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRenderPage_PropagatesWriteError(t *testing.T) {
	p, _ := mustIterator(t, sampleBook(t), 1).Next()
	if err := RenderPage(failWriter{}, p, testNow); !errors.Is(err, errWrite) {
		t.Errorf("RenderPage() error = %v, want %v", err, errWrite)
	}
}
