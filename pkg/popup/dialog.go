package popup

import (
	"context"
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	defs "helios/definitions"
	er "helios/errors"
	log "helios/logger"
)

// Style is the font and colour scheme of a text popup.
type Style struct {
	Font string
	Fore string
	Back string
}

// Popup describes one timed text window.
type Popup struct {
	Text    string
	Width   int
	Height  int
	Timeout time.Duration
	Style   Style
}

// SecretRequest describes a masked entry dialog.
type SecretRequest struct {
	Title string
	Label string
	Width int
}

// Dialog is the external GUI collaborator.
type Dialog interface {
	// PromptSecret blocks until the user answers. ok is false when the
	// dialog was dismissed.
	PromptSecret(ctx context.Context, req SecretRequest) (secret string, ok bool, err error)
	// ShowText opens an auto-closing text window and returns without
	// waiting for it.
	ShowText(p Popup) error
}

// yad exit statuses for a dismissed dialog: Cancel, timeout, ESC.
var cancelCodes = map[int]bool{
	1:   true,
	70:  true,
	252: true,
}

// Yad drives the yad dialog tool.
type Yad struct {
	Binary string
}

func NewYad(binary string) *Yad {
	if binary == "" {
		binary = defs.DialogBinary
	}
	return &Yad{Binary: binary}
}

func entryArgs(req SecretRequest) []string {
	return []string{
		"--entry", "--hide-text",
		"--entry-label", req.Label,
		"--width", strconv.Itoa(req.Width),
		"--borders=10", "--on-top", "--center",
		"--title", req.Title,
	}
}

func textInfoArgs(p Popup) []string {
	return []string{
		"--text-info", "--listen", "--tail",
		"--fontname=" + p.Style.Font,
		"--height=" + strconv.Itoa(p.Height),
		"--width=" + strconv.Itoa(p.Width),
		"--center", "--skip-taskbar", "--on-top",
		"--fore=" + p.Style.Fore,
		"--back=" + p.Style.Back,
		"--no-buttons",
		"--timeout=" + strconv.Itoa(int(p.Timeout/time.Second)),
		"--undecorated",
	}
}

func (y *Yad) PromptSecret(ctx context.Context, req SecretRequest) (string, bool, error) {
	cmd := exec.CommandContext(ctx, y.Binary, entryArgs(req)...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil && cancelCodes[exitErr.ExitCode()] {
			log.Debugf("%s entry dialog exited with %d", y.Binary, exitErr.ExitCode())
			return "", false, nil
		}
		return "", false, errors.Wrapf(er.DialogFailed, "%s --entry: %v", y.Binary, err)
	}
	return lastLine(string(output)), true, nil
}

// ShowText hands the whole text to yad before returning, so the popup keeps
// its content when the caller exits right away.
func (y *Yad) ShowText(p Popup) error {
	cmd := exec.Command(y.Binary, textInfoArgs(p)...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return errors.Wrapf(er.DialogFailed, "%s --text-info: %v", y.Binary, err)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(er.DialogFailed, "%s --text-info: %v", y.Binary, err)
	}

	_, werr := io.WriteString(stdin, p.Text)
	if cerr := stdin.Close(); werr == nil {
		werr = cerr
	}
	// EPIPE: yad went away without reading, nothing left to show
	if werr != nil && !errors.Is(werr, unix.EPIPE) {
		log.WithError(werr).Debugf("failed to feed %s text popup", y.Binary)
	}

	// yad exits non-zero when the timeout closes the window
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debugf("%s text popup exited: %v", y.Binary, err)
		}
	}()
	return nil
}

// lastLine returns the last non-empty line of out.
func lastLine(out string) string {
	lines := splitLines(out)
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] != "" {
			return lines[i]
		}
	}
	return ""
}
