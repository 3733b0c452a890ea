package utils

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// MessageType defines the type of message box to render.
type MessageType int

const (
	// InfoMessage represents an informational message.
	InfoMessage MessageType = iota
	// SuccessMessage represents a success message.
	SuccessMessage
	// WarningMessage represents a warning message.
	WarningMessage
	// ErrorMessage represents an error message.
	ErrorMessage
	// QuestionMessage represents a question or prompt.
	QuestionMessage
)

type boxTheme struct {
	color  lipgloss.Color
	prefix string
}

var themes = map[MessageType]boxTheme{
	InfoMessage:     {lipgloss.Color("86"), "ℹ"},
	SuccessMessage:  {lipgloss.Color("42"), "✓"},
	WarningMessage:  {lipgloss.Color("178"), "⚠"},
	ErrorMessage:    {lipgloss.Color("196"), "✗"},
	QuestionMessage: {lipgloss.Color("99"), "?"},
}

// Box is a builder for creating formatted message boxes.
type Box struct {
	messageType MessageType
	title       string
	content     []string
}

// NewBox creates a new message box with a specific type.
func NewBox(messageType MessageType, title string) *Box {
	return &Box{
		messageType: messageType,
		title:       title,
		content:     []string{},
	}
}

// AddLine adds a line of text to the message box content.
func (b *Box) AddLine(text string) *Box {
	b.content = append(b.content, text)
	return b
}

// AddBullet adds a bulleted line to the message box content.
func (b *Box) AddBullet(text string) *Box {
	b.content = append(b.content, fmt.Sprintf("• %s", text))
	return b
}

// Render builds and returns the formatted message box as a string.
func (b *Box) Render() string {
	theme, ok := themes[b.messageType]
	if !ok {
		theme = themes[InfoMessage]
	}

	contentWidth := getTerminalWidth() - 8
	titleStyle := lipgloss.NewStyle().Foreground(theme.color).Bold(true)

	lines := []string{fmt.Sprintf("%s %s", titleStyle.Render(theme.prefix), b.title)}
	for _, line := range b.content {
		for _, wrapped := range wrapText(line, contentWidth) {
			lines = append(lines, "  "+wrapped)
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.color).
		Padding(0, 1)

	return boxStyle.Render(strings.Join(lines, "\n"))
}

// Convenience functions for creating and rendering message boxes.

func Info(title string, lines ...string) string {
	box := NewBox(InfoMessage, title)
	for _, line := range lines {
		box.AddLine(line)
	}
	return box.Render()
}

func Success(title string, lines ...string) string {
	box := NewBox(SuccessMessage, title)
	for _, line := range lines {
		box.AddLine(line)
	}
	return box.Render()
}

func Warning(title string, lines ...string) string {
	box := NewBox(WarningMessage, title)
	for _, line := range lines {
		box.AddLine(line)
	}
	return box.Render()
}

func Error(title string, lines ...string) string {
	box := NewBox(ErrorMessage, title)
	for _, line := range lines {
		box.AddLine(line)
	}
	return box.Render()
}

func Question(title string, lines ...string) string {
	box := NewBox(QuestionMessage, title)
	for _, line := range lines {
		box.AddLine(line)
	}
	return box.Render()
}

// getTerminalWidth returns the terminal width or defaults to 80 if unable to detect.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to fit within the specified maximum width.
func wrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 || utf8.RuneCountInString(text) <= maxWidth {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	currentLine := words[0]
	currentWidth := utf8.RuneCountInString(currentLine)

	for _, word := range words[1:] {
		wordWidth := utf8.RuneCountInString(word)

		if currentWidth+wordWidth+1 <= maxWidth {
			currentLine += " " + word
			currentWidth += wordWidth + 1
		} else {
			lines = append(lines, currentLine)
			currentLine = word
			currentWidth = wordWidth
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
