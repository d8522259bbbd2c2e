package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	presentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	absentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	markupStyle  = lipgloss.NewStyle().MarginLeft(2).Foreground(lipgloss.Color("250"))
)

func supportsStyles(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

type painter struct {
	styled bool
}

func (p painter) label(s string) string {
	if !p.styled {
		return s
	}
	return labelStyle.Render(s)
}

func (p painter) value(s string, present bool) string {
	if !p.styled {
		return s
	}
	if present {
		return presentStyle.Render(s)
	}
	return absentStyle.Render(s)
}

func (p painter) markup(s string) string {
	if !p.styled {
		return s
	}
	return markupStyle.Render(s)
}
