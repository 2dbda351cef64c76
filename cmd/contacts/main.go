package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/contacts/internal/config"
	"github.com/smileynet/contacts/internal/field"
	"github.com/smileynet/contacts/internal/logging"
	"github.com/smileynet/contacts/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for contacts.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	List    ListCmd          `cmd:"" default:"withargs" help:"Show the sample contacts page by page."`
	Check   CheckCmd         `cmd:"" help:"Validate a single field value."`
}

// ListCmd builds the sample address book and shows it one page at a time.
type ListCmd struct {
	PageSize *int `help:"Records per page (overrides config)." short:"n"`
	NoTUI    bool `help:"Force plain text output even if stdout is a TTY." default:"false"`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contacts/config.yaml"),
		".contacts.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the list command.
func (l *ListCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return l.run(ctx, os.Stdout, cfg, log, time.Now)
}

// run builds the book and displays it, enabling testable wiring.
// Flag overrides are applied after config validation so that a bad
// --page-size surfaces as the address book's own error.
func (l *ListCmd) run(ctx context.Context, w io.Writer, cfg *config.Config, log *zap.Logger, clock func() time.Time) error {
	pageSize := cfg.Display.PageSize
	if l.PageSize != nil {
		pageSize = *l.PageSize
	}

	book, err := sampleBook(clock, log)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	total, err := book.PageCount(pageSize)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	it, err := book.Iterator(pageSize)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	log.Debug("listing contacts", zap.Int("records", book.Len()), zap.Int("page_size", pageSize), zap.Int("pages", total))

	display := tui.NewDisplay(tui.DisplayOptions{
		Writer:     w,
		ForcePlain: l.NoTUI || cfg.Display.Plain,
		Clock:      clock,
		TotalPages: total,
		Logger:     log,
	})
	if err := display.Run(ctx, it); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

// CheckCmd validates one value with the same rules records use.
type CheckCmd struct {
	Phone    CheckPhoneCmd    `cmd:"" help:"Validate a phone number."`
	Birthday CheckBirthdayCmd `cmd:"" help:"Validate a birthday given as YYYY-MM-DD."`
}

// CheckPhoneCmd validates a phone number.
type CheckPhoneCmd struct {
	Value string `arg:"" help:"Phone number to validate."`
}

// Run executes the phone check.
func (c *CheckPhoneCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *CheckPhoneCmd) run(w io.Writer) error {
	if _, err := field.NewPhone(c.Value); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	_, _ = fmt.Fprintf(w, "ok: phone %s\n", c.Value)
	return nil
}

// CheckBirthdayCmd validates a birthday.
type CheckBirthdayCmd struct {
	Value string `arg:"" help:"Birthday to validate (YYYY-MM-DD)."`
}

// Run executes the birthday check.
func (c *CheckBirthdayCmd) Run() error {
	return c.run(os.Stdout, time.Now)
}

func (c *CheckBirthdayCmd) run(w io.Writer, clock func() time.Time) error {
	now := clock()
	t, err := time.ParseInLocation(field.DateLayout, c.Value, now.Location())
	if err != nil {
		return fmt.Errorf("check: %w", field.NewValidationError(string(field.KindBirthday), field.InvalidFormat,
			fmt.Sprintf("birthday must be written as YYYY-MM-DD, got %q", c.Value)))
	}
	if _, err := field.NewBirthday(t, now); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	_, _ = fmt.Fprintf(w, "ok: birthday %s\n", t.Format(field.DateLayout))
	return nil
}

// Exit codes.
const (
	exitSuccess    = 0
	exitValidation = 1
	exitSetup      = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ve *field.ValidationError
	if errors.As(err, &ve) {
		return exitValidation
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("A small contact list with validated phones and birthdays."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
