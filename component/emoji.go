package component

import "github.com/discordkit/components/wire"

// Emoji references either a built-in unicode emoji (name only) or a custom
// guild emoji (name plus opaque id, optionally animated).
type Emoji struct {
	Name     string
	Animated bool
	ID       string
}

// NewEmoji builds a reference to a unicode emoji.
func NewEmoji(name string) Emoji {
	return Emoji{Name: name}
}

// NewCustomEmoji builds a reference to a custom guild emoji.
func NewCustomEmoji(name, id string, animated bool) Emoji {
	return Emoji{Name: name, Animated: animated, ID: id}
}

func (e Emoji) IsCustom() bool {
	return e.ID != ""
}

func (e Emoji) ToWire() wire.Emoji {
	return wire.Emoji{Name: e.Name, Animated: e.Animated, ID: e.ID}
}

func EmojiFromWire(w wire.Emoji) Emoji {
	return Emoji{Name: w.Name, Animated: w.Animated, ID: w.ID}
}
