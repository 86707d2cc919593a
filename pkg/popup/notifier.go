package popup

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	defs "helios/definitions"
	log "helios/logger"
)

const divider = "-------------------------------------------------------------------------"

// Config holds the popup settings read from the [popup] section.
type Config struct {
	Binary      string
	NoticeStyle Style
	ErrorStyle  Style
	// MinTimeout is the shortest time a popup stays up, in seconds.
	MinTimeout int
}

func DefaultConfig() Config {
	return Config{
		Binary:      defs.DialogBinary,
		NoticeStyle: Style{Font: defs.PopupFont, Fore: defs.NoticeFore, Back: defs.PopupBack},
		ErrorStyle:  Style{Font: defs.PopupFont, Fore: defs.ErrorFore, Back: defs.PopupBack},
		MinTimeout:  defs.PopupMinTimeout,
	}
}

// Notifier shows popups, console warnings and the password prompt, and
// terminates the program on fatal errors.
type Notifier struct {
	dialog Dialog
	cfg    Config
	out    io.Writer

	sleep func(time.Duration)
	exit  func(int)
}

func NewNotifier(dialog Dialog, cfg Config) *Notifier {
	if dialog == nil {
		dialog = NewYad(cfg.Binary)
	}
	return &Notifier{
		dialog: dialog,
		cfg:    cfg,
		out:    os.Stdout,
		sleep:  time.Sleep,
		exit:   os.Exit,
	}
}

// SetOutput changes where Warn writes.
func (n *Notifier) SetOutput(w io.Writer) {
	n.out = w
}

// PromptPassword asks for a password in a masked entry dialog. ok is false
// when the dialog was cancelled.
func (n *Notifier) PromptPassword(ctx context.Context) (string, bool, error) {
	return n.dialog.PromptSecret(ctx, SecretRequest{
		Title: defs.PasswordTitle,
		Label: defs.PasswordLabel,
		Width: defs.PasswordWidth,
	})
}

// ShowNotice pops up message under header, "Notice:" when header is empty.
// An empty message shows nothing.
func (n *Notifier) ShowNotice(message, header string) error {
	if header == "" {
		header = defs.LabelNotice
	}
	return n.show(message, header, n.cfg.NoticeStyle)
}

// ShowError is ShowNotice in error colours, "Error:" when header is empty.
func (n *Notifier) ShowError(message, header string) error {
	if header == "" {
		header = defs.LabelError
	}
	return n.show(message, header, n.cfg.ErrorStyle)
}

func (n *Notifier) show(message, header string, style Style) error {
	if message == "" {
		return nil
	}

	text, lines, width := FormatNoticeText(header + " " + message)
	p := Popup{
		Text:    text,
		Width:   width,
		Height:  windowHeight(lines),
		Timeout: time.Duration(max(n.cfg.MinTimeout, lines)) * time.Second,
		Style:   style,
	}
	log.Debugf("popup %s %q (%dx%d, %s)", header, message, p.Width, p.Height, p.Timeout)
	return n.dialog.ShowText(p)
}

// Warn prints message between two dividers, "Notice:" when header is empty.
func (n *Notifier) Warn(message, header string) {
	if message == "" {
		return
	}
	if header == "" {
		header = defs.LabelNotice
	}
	fmt.Fprintln(n.out, divider)
	fmt.Fprintln(n.out, header+" "+message)
	fmt.Fprintln(n.out, divider)
}

// Fatal shows an error popup, gives it a moment to appear and exits with
// status 1.
func (n *Notifier) Fatal(message, header string) {
	if strings.TrimSpace(message) == "" {
		message = defs.FatalMessage
	}
	if err := n.ShowError(message, header); err != nil {
		log.WithError(err).Error(message)
	}
	n.sleep(defs.FatalDelay)
	n.exit(1)
}
