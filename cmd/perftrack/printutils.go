package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

var (
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(false)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	todayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true)
)

func colorize(color string, s string) string {
	return color + s + colorReset
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func bar(percentage, width int) string {
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
