// Package ui renders columns in immediate mode: every bubbletea message
// produces one Frame, views draw into it and return their responses.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ColumnStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	FocusedStyle  = ColumnStyle.BorderForeground(lipgloss.Color("63"))
)

type Frame struct {
	msg     tea.Msg
	focused bool
	width   int
	out     *strings.Builder
	cmds    *[]tea.Cmd
}

func NewFrame(msg tea.Msg, width int) *Frame {
	return &Frame{
		msg:     msg,
		focused: true,
		width:   width,
		out:     &strings.Builder{},
		cmds:    &[]tea.Cmd{},
	}
}

// Column returns a frame for one column; only a focused column receives keys
func (f *Frame) Column(focused bool, width int) *Frame {
	return &Frame{
		msg:     f.msg,
		focused: focused && f.focused,
		width:   width,
		out:     &strings.Builder{},
		cmds:    f.cmds,
	}
}

func (f *Frame) Msg() tea.Msg {
	if _, isKey := f.msg.(tea.KeyMsg); isKey && !f.focused {
		return nil
	}
	return f.msg
}

func (f *Frame) Key() (tea.KeyMsg, bool) {
	if !f.focused {
		return tea.KeyMsg{}, false
	}
	k, ok := f.msg.(tea.KeyMsg)
	return k, ok
}

func (f *Frame) Focused() bool {
	return f.focused
}

func (f *Frame) Width() int {
	return f.width
}

func (f *Frame) Line(s string) {
	f.out.WriteString(s)
	f.out.WriteByte('\n')
}

func (f *Frame) Linef(format string, args ...any) {
	f.Line(fmt.Sprintf(format, args...))
}

func (f *Frame) Cmd(cmd tea.Cmd) {
	if cmd != nil {
		*f.cmds = append(*f.cmds, cmd)
	}
}

// Cmds batches the commands of all frames derived from this one
func (f *Frame) Cmds() tea.Cmd {
	return tea.Batch(*f.cmds...)
}

func (f *Frame) String() string {
	return strings.TrimSuffix(f.out.String(), "\n")
}
