package ui

import (
	"strings"

	"gemchat/pkg/chat"
	"gemchat/pkg/ui/styles"

	"github.com/mattn/go-runewidth"
)

// renderMessages renders the ordered message log as wrapped, styled lines.
// One visual block per message, blank line between blocks.
func renderMessages(msgs []chat.Message, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for i, msg := range msgs {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, renderMessage(msg, width)...)
	}
	return lines
}

func renderMessage(msg chat.Message, width int) []string {
	label := messageLabel(msg.Origin)
	body := sanitizeText(msg.Text)

	wrapped := wrapText(body, width)
	if len(wrapped) == 0 {
		wrapped = []string{""}
	}

	lines := make([]string, 0, len(wrapped)+1)
	lines = append(lines, label)
	for _, line := range wrapped {
		lines = append(lines, styles.TextStyle.Render(line))
	}
	return lines
}

func messageLabel(origin chat.Origin) string {
	if origin == chat.OriginUser {
		return styles.UserLabelStyle.Render("You:")
	}
	return styles.AssistantLabelStyle.Render("Assistant:")
}

// wrapText word-wraps text to the given display width, breaking words that
// are wider than a full line.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			lines = append(lines, "")
			continue
		}

		var sb strings.Builder
		lineWidth := 0
		for _, word := range strings.Fields(raw) {
			for _, part := range splitByWidth(word, width) {
				partWidth := runewidth.StringWidth(part)
				if lineWidth > 0 && lineWidth+1+partWidth > width {
					lines = append(lines, sb.String())
					sb.Reset()
					lineWidth = 0
				}
				if lineWidth > 0 {
					sb.WriteString(" ")
					lineWidth++
				}
				sb.WriteString(part)
				lineWidth += partWidth
			}
		}
		if sb.Len() > 0 {
			lines = append(lines, sb.String())
		}
	}
	return lines
}

// splitByWidth breaks a single word into chunks no wider than width.
func splitByWidth(text string, width int) []string {
	if width <= 0 || text == "" {
		return []string{text}
	}

	var parts []string
	var sb strings.Builder
	currentWidth := 0

	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width && currentWidth > 0 {
			parts = append(parts, sb.String())
			sb.Reset()
			currentWidth = 0
		}
		sb.WriteRune(r)
		currentWidth += rw
	}

	if sb.Len() > 0 {
		parts = append(parts, sb.String())
	}
	if len(parts) == 0 {
		return []string{""}
	}
	return parts
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 3 {
		return trimToWidth(text, width)
	}
	return trimToWidth(text, width-3) + "..."
}

func trimToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	currentWidth := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width {
			break
		}
		sb.WriteRune(r)
		currentWidth += rw
	}
	return sb.String()
}

// sanitizeText drops control characters that would corrupt the layout.
func sanitizeText(text string) string {
	if text == "" {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' {
			sb.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
