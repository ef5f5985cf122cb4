package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmoji(t *testing.T) {
	emoji := NewEmoji("👍")

	assert.Equal(t, "👍", emoji.Name)
	assert.False(t, emoji.Animated)
	assert.Empty(t, emoji.ID)
	assert.False(t, emoji.IsCustom())
}

func TestNewCustomEmoji(t *testing.T) {
	emoji := NewCustomEmoji("party_parrot", "112233445566778899", true)

	assert.Equal(t, "party_parrot", emoji.Name)
	assert.True(t, emoji.Animated)
	assert.Equal(t, "112233445566778899", emoji.ID)
	assert.True(t, emoji.IsCustom())
}

func TestEmojiWireRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		emoji Emoji
	}{
		{name: "unicode", emoji: NewEmoji("🔥")},
		{name: "custom static", emoji: NewCustomEmoji("blob", "42", false)},
		{name: "custom animated", emoji: NewCustomEmoji("blob_dance", "43", true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.emoji, EmojiFromWire(tt.emoji.ToWire()))
		})
	}
}
