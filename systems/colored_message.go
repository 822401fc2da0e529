package systems

import (
	"image/color"
	"strings"
)

// MessageType defines the kinds of lines that appear in the message log
type MessageType int

const (
	// MessageTypeNormal is for movement and other routine lines
	MessageTypeNormal MessageType = iota
	// MessageTypeWorld is for world creation, saving and loading
	MessageTypeWorld
	// MessageTypeAlert is for failures
	MessageTypeAlert
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// NewColoredMessage classifies a log line by its wording
func NewColoredMessage(text string) ColoredMessage {
	msgType := MessageTypeNormal
	switch {
	case strings.HasPrefix(text, "ERROR"):
		msgType = MessageTypeAlert
	case strings.Contains(text, "world") || strings.Contains(text, "World"):
		msgType = MessageTypeWorld
	}
	return ColoredMessage{Text: text, Type: msgType}
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeWorld:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeAlert:
		return color.RGBA{255, 100, 100, 255} // Red
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}

// ColoredMessages returns the n most recent messages, newest first, with
// their colors
func (ml *MessageLog) ColoredMessages(n int) []ColoredMessage {
	recent := ml.RecentMessages(n)
	result := make([]ColoredMessage, len(recent))
	for i, text := range recent {
		result[i] = NewColoredMessage(text)
	}
	return result
}
