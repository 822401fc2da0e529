package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColoredMessage(t *testing.T) {
	assert.Equal(t, MessageTypeAlert, NewColoredMessage("ERROR: load failed: no saved world").Type)
	assert.Equal(t, MessageTypeWorld, NewColoredMessage("New world from seed 5").Type)
	assert.Equal(t, MessageTypeWorld, NewColoredMessage("World saved").Type)
	assert.Equal(t, MessageTypeNormal, NewColoredMessage("You bump into a wall").Type)
}

func TestColoredMessages_NewestFirst(t *testing.T) {
	ml := NewMessageLog(10)
	ml.Add("World loaded")
	ml.Add("ERROR: save failed")

	got := ml.ColoredMessages(5)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "ERROR: save failed", got[0].Text)
		assert.Equal(t, MessageTypeAlert, got[0].Type)
		assert.Equal(t, MessageTypeWorld, got[1].Type)
	}
	assert.NotEqual(t, got[0].GetColor(), got[1].GetColor())
}
