package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/addressbook"
	"github.com/smileynet/contacts/internal/record"
)

// Model is the Bubble Tea model for the address book pager.
type Model struct {
	pages *pageCache
	index int // Current page, 0-based.
	total int // Known page count, or 0 if not supplied.
	clock func() time.Time
	keys  pagerKeys
	help  help.Model
	width int
	done  bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithClock sets the time source for birthday distances.
func WithClock(clock func() time.Time) ModelOption {
	return func(m *Model) { m.clock = clock }
}

// WithTotalPages sets the page count shown in the header.
func WithTotalPages(n int) ModelOption {
	return func(m *Model) { m.total = n }
}

// NewModel creates a pager pulling pages from src. The first page is pulled
// immediately; later pages only when the user moves forward.
func NewModel(src PageSource, opts ...ModelOption) Model {
	return newModel(newPageCache(src), opts...)
}

func newModel(pages *pageCache, opts ...ModelOption) Model {
	m := Model{
		pages: pages,
		clock: time.Now,
		keys:  PagerKeyMap(),
		help:  help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.pages.get(0)
	return m
}

// Init has no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if _, ok := m.pages.get(m.index + 1); ok {
				m.index++
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.index > 0 {
				m.index--
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}

// Current returns the page on screen, or false if the book is empty.
func (m Model) Current() (addressbook.Page, bool) {
	return m.pages.get(m.index)
}

// View renders the current page as a list of record cards.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	page, ok := m.Current()
	if !ok {
		b.WriteString(dimStyle.Render("No contacts.") + "\n\n")
		b.WriteString(m.help.View(m.keys) + "\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(m.headerText(page)) + "\n")

	now := m.clock()
	card := CardBorder().Width(CardWidth(m.width))
	for _, r := range page.Records {
		b.WriteString(card.Render(recordCard(r, now)) + "\n")
	}

	if m.pages.knownLast(m.index) {
		b.WriteString(dimStyle.Render("(end)") + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) headerText(page addressbook.Page) string {
	if m.total > 0 {
		return fmt.Sprintf("Page %d of %d", page.Number, m.total)
	}
	return fmt.Sprintf("Page %d", page.Number)
}

// recordCard renders the body of one record card.
func recordCard(r *record.Record, now time.Time) string {
	lines := []string{labelStyle.Render("Name:  ") + r.Name()}
	if p, ok := r.Phone(); ok {
		lines = append(lines, labelStyle.Render("Phone: ")+p.String())
	}
	if days, ok := r.DaysToBirthday(now); ok {
		bd, _ := r.Birthday()
		lines = append(lines, labelStyle.Render("Born:  ")+bd.String()+"  "+BirthdayBadge(days))
	}
	return strings.Join(lines, "\n")
}
