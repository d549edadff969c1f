// Package ui renders the chat views on a terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"talker/domain/chat"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// TerminalRenderer writes every view to out. Messages of the current user
// and of the others are told apart by colour and alignment.
type TerminalRenderer struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
	last    []chat.DisplayMessage
}

func NewTerminalRenderer(out io.Writer, colours bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, colours: colours}
}

func (r *TerminalRenderer) ShowSignIn() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = nil
	r.println(r.paint(color.FgYellow, "Signed out. Type /signin to sign in, /quit to leave."))
}

func (r *TerminalRenderer) ShowChat(messages []chat.DisplayMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = messages
	r.println(r.paint(color.FgMagenta, strings.Repeat("─", 40)))
	for _, m := range messages {
		if m.IsOwn {
			r.println(fmt.Sprintf("%40s", r.paint(color.FgGreen, m.Text+" ◂ you")))
			continue
		}
		r.println(r.paint(color.FgCyan, m.AuthorID+" ▸ ") + m.Text)
	}
}

func (r *TerminalRenderer) ShowProfile(profile chat.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"User", "Avatar"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{profile.UserID, profile.AvatarURL})
	table.Render()
	r.println(r.paint(color.FgYellow, "Type /back to return to the chat."))
}

func (r *TerminalRenderer) ScrollToLatest() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println(r.paint(color.FgMagenta, "↓ latest"))
}

// ProfileOf looks up the newest rendered message of userID.
func (r *TerminalRenderer) ProfileOf(userID string) (chat.Profile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.last) - 1; i >= 0; i-- {
		if r.last[i].AuthorID == userID {
			return chat.ProfileOf(r.last[i].Message), true
		}
	}
	return chat.Profile{}, false
}

func (r *TerminalRenderer) paint(c color.Color, s string) string {
	if !r.colours {
		return s
	}
	return c.Render(s)
}

func (r *TerminalRenderer) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}
