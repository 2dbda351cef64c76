package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/contacts/internal/addressbook"
)

// PageSource yields pages on demand. *addressbook.Iterator implements it.
type PageSource interface {
	Next() (addressbook.Page, bool)
}

var _ PageSource = (*addressbook.Iterator)(nil)

// Display shows the pages of a PageSource.
type Display interface {
	Run(ctx context.Context, src PageSource) error
}

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Writer     io.Writer        // Output destination (default: os.Stdout).
	ForcePlain bool             // Force plain text even if TTY.
	Clock      func() time.Time // Time source for birthday distances (default: time.Now).
	TotalPages int              // Shown in the pager header when > 0.
	Logger     *zap.Logger      // Diagnostics (default: no-op).
}

// NewDisplay returns a TUI display when the writer is a TTY, or a plain text
// display otherwise. ForcePlain overrides TTY detection.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return &PlainDisplay{w: opts.Writer, clock: opts.Clock, log: opts.Logger}
	}

	return &TUIDisplay{w: opts.Writer, clock: opts.Clock, total: opts.TotalPages, log: opts.Logger}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay writes every page as text, pulling one page at a time.
type PlainDisplay struct {
	w     io.Writer
	clock func() time.Time
	log   *zap.Logger
}

// Run renders pages until the source is exhausted or ctx is cancelled.
func (d *PlainDisplay) Run(ctx context.Context, src PageSource) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, ok := src.Next()
		if !ok {
			return nil
		}
		d.log.Debug("rendering page", zap.Int("page", p.Number), zap.Int("records", len(p.Records)))
		if err := RenderPage(d.w, p, d.clock()); err != nil {
			return fmt.Errorf("display: writing page %d: %w", p.Number, err)
		}
	}
}

// TUIDisplay runs an interactive pager.
// Falls back to PlainDisplay if the TUI program fails to start.
type TUIDisplay struct {
	w     io.Writer
	clock func() time.Time
	total int
	log   *zap.Logger
}

// Run starts the Bubble Tea program over src. If the TUI fails, the pages
// it already pulled and the rest of src are written as plain text.
func (d *TUIDisplay) Run(ctx context.Context, src PageSource) error {
	cache := newPageCache(src)
	model := newModel(cache, WithClock(d.clock), WithTotalPages(d.total))
	p := tea.NewProgram(model, tea.WithOutput(d.w), tea.WithContext(ctx))

	_, err := p.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	d.log.Warn("pager failed, falling back to plain output", zap.Error(err))
	plain := &PlainDisplay{w: d.w, clock: d.clock, log: d.log}
	return plain.Run(ctx, cache.replay())
}
