// Package wire holds the JSON shapes exchanged with the platform's
// message-component API. Field names match the API exactly; validation
// lives in package component.
package wire

import "encoding/json"

// Component type discriminators, as sent in the "type" field.
const (
	TypeActionRow  = 1
	TypeButton     = 2
	TypeSelectMenu = 3
)

type Button struct {
	Type     int     `json:"type"`
	Style    int     `json:"style"`
	Label    *string `json:"label"`
	CustomID *string `json:"custom_id"`
	URL      *string `json:"url"`
	Disabled bool    `json:"disabled"`
	Emoji    *Emoji  `json:"emoji,omitempty"`
}

type Emoji struct {
	Name     string `json:"name"`
	Animated bool   `json:"animated,omitempty"`
	ID       string `json:"id,omitempty"`
}

type SelectOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Emoji       *Emoji `json:"emoji,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

type SelectMenu struct {
	Type        int            `json:"type"`
	CustomID    string         `json:"custom_id"`
	Options     []SelectOption `json:"options"`
	Placeholder string         `json:"placeholder,omitempty"`
	MinValues   int            `json:"min_values"`
	MaxValues   int            `json:"max_values"`
	Disabled    bool           `json:"disabled,omitempty"`
}

type ActionRow struct {
	Type       int               `json:"type"`
	Components []json.RawMessage `json:"components"`
}

// TypeExtractor reads only the discriminator, for deciding which concrete
// component shape to decode a payload into.
type TypeExtractor struct {
	Type int `json:"type"`
}
