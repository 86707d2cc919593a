package popup

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialog struct {
	popups   []Popup
	requests []SecretRequest
	secret   string
	ok       bool
	err      error
}

func (f *fakeDialog) PromptSecret(_ context.Context, req SecretRequest) (string, bool, error) {
	f.requests = append(f.requests, req)
	return f.secret, f.ok, f.err
}

func (f *fakeDialog) ShowText(p Popup) error {
	f.popups = append(f.popups, p)
	return f.err
}

func newTestNotifier() (*Notifier, *fakeDialog, *bytes.Buffer) {
	d := &fakeDialog{}
	n := NewNotifier(d, DefaultConfig())
	out := &bytes.Buffer{}
	n.SetOutput(out)
	return n, d, out
}

func TestShowNotice(t *testing.T) {
	n, d, _ := newTestNotifier()

	require.NoError(t, n.ShowNotice("APT sources restored OK", ""))
	require.Len(t, d.popups, 1)

	p := d.popups[0]
	text, _, width := FormatNoticeText("Notice: APT sources restored OK")
	assert.Equal(t, text, p.Text)
	assert.Equal(t, width, p.Width)
	assert.Equal(t, 1*13+60, p.Height)
	assert.Equal(t, 3*time.Second, p.Timeout)
	assert.Equal(t, Style{Font: "Liberation Mono Regular 12", Fore: "#0F482E", Back: "#FFFACD"}, p.Style)
}

func TestShowNoticeCustomHeader(t *testing.T) {
	n, d, _ := newTestNotifier()

	require.NoError(t, n.ShowNotice("APT sources prepared for update OK", "OK:"))
	require.Len(t, d.popups, 1)
	assert.Contains(t, d.popups[0].Text, "OK: APT sources prepared for update OK")
}

func TestShowErrorTimeoutFollowsLines(t *testing.T) {
	n, d, _ := newTestNotifier()

	require.NoError(t, n.ShowError("one\ntwo\nthree\nfour\nfive", ""))
	require.Len(t, d.popups, 1)

	p := d.popups[0]
	assert.Contains(t, p.Text, "Error: one")
	assert.Equal(t, 5*13+60, p.Height)
	assert.Equal(t, 5*time.Second, p.Timeout)
	assert.Equal(t, "#961D1D", p.Style.Fore)
	assert.Equal(t, "#FFFACD", p.Style.Back)
}

func TestEmptyMessagesAreIgnored(t *testing.T) {
	n, d, out := newTestNotifier()

	assert.NoError(t, n.ShowNotice("", ""))
	assert.NoError(t, n.ShowError("", "Error:"))
	n.Warn("", "")

	assert.Empty(t, d.popups)
	assert.Empty(t, out.String())
}

func TestShowNoticeDialogError(t *testing.T) {
	n, d, _ := newTestNotifier()
	d.err = errors.New("no display")

	assert.EqualError(t, n.ShowNotice("hello", ""), "no display")
}

func TestWarn(t *testing.T) {
	n, _, out := newTestNotifier()

	n.Warn("offline update in progress", "")
	n.Warn("disk almost full", "Error:")

	line := "-------------------------------------------------------------------------\n"
	assert.Equal(t,
		line+"Notice: offline update in progress\n"+line+
			line+"Error: disk almost full\n"+line,
		out.String())
	assert.Len(t, line, 74)
}

func TestPromptPassword(t *testing.T) {
	n, d, _ := newTestNotifier()
	d.secret, d.ok = "hunter2", true

	secret, ok, err := n.PromptPassword(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hunter2", secret)
	assert.Equal(t, []SecretRequest{{Title: "Enter Your Password", Label: "Enter Password", Width: 340}}, d.requests)

	d.secret, d.ok = "", false
	_, ok, err = n.PromptPassword(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFatal(t *testing.T) {
	tests := []struct {
		name    string
		message string
		header  string
		want    string
	}{
		{
			name: "defaults",
			want: "Error: Program Script Terminated",
		},
		{
			name:    "custom header",
			message: "update failed",
			header:  "Abort:",
			want:    "Abort: update failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, d, _ := newTestNotifier()
			var slept time.Duration
			code := -1
			n.sleep = func(dur time.Duration) { slept = dur }
			n.exit = func(c int) { code = c }

			n.Fatal(tt.message, tt.header)

			require.Len(t, d.popups, 1)
			assert.Contains(t, d.popups[0].Text, tt.want)
			assert.Equal(t, "#961D1D", d.popups[0].Style.Fore)
			assert.Equal(t, time.Second, slept)
			assert.Equal(t, 1, code)
		})
	}
}

func TestFatalExitsWhenPopupFails(t *testing.T) {
	n, d, _ := newTestNotifier()
	d.err = errors.New("no display")
	code := -1
	n.sleep = func(time.Duration) {}
	n.exit = func(c int) { code = c }

	n.Fatal("boom", "")
	assert.Equal(t, 1, code)
}
