package component

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/discordkit/components/wire"
)

// Button is an interactive message button. Link-styled buttons carry a URL
// and no custom_id; every other style carries a custom_id (generated when
// not supplied) and no URL. A button always has a label, an emoji, or both.
type Button struct {
	style    Style
	label    string
	customID string
	url      string
	disabled bool
	emoji    *Emoji
}

// ButtonParams are the constructor inputs for NewButton. A zero Style
// defaults to StyleGray.
type ButtonParams struct {
	Label    string
	Style    Style
	CustomID string
	URL      string
	Disabled bool
	Emoji    *Emoji
}

func NewButton(params ButtonParams) (*Button, error) {
	style := params.Style
	if style == 0 {
		style = StyleGray
	}

	if style == StyleLink && params.URL == "" {
		return nil, fmt.Errorf("%w: a url is required when style is link", ErrInvalidArgument)
	}
	if style == StyleLink && params.CustomID != "" {
		return nil, fmt.Errorf("%w: both custom_id and url are set", ErrInvalidArgument)
	}
	if !style.IsValid() {
		return nil, fmt.Errorf("%w: style must be between %d and %d", ErrInvalidArgument, StyleBlue, StyleLink)
	}
	if params.Label == "" && params.Emoji == nil {
		return nil, fmt.Errorf("%w: label or emoji must be given", ErrInvalidArgument)
	}

	b := &Button{
		style:    style,
		label:    params.Label,
		url:      params.URL,
		disabled: params.Disabled,
	}
	if params.Emoji != nil {
		emoji := *params.Emoji
		b.emoji = &emoji
	}
	if style != StyleLink {
		b.customID = params.CustomID
		if b.customID == "" {
			b.customID = uuid.NewString()
		}
	}
	return b, nil
}

func (b *Button) Style() Style     { return b.style }
func (b *Button) Label() string    { return b.label }
func (b *Button) CustomID() string { return b.customID }
func (b *Button) Disabled() bool   { return b.disabled }

// URL returns the button's url. Empty for every style but StyleLink.
func (b *Button) URL() string { return b.url }

func (b *Button) Emoji() *Emoji {
	if b.emoji == nil {
		return nil
	}
	emoji := *b.emoji
	return &emoji
}

// SetStyle changes the button's style. Switching does not clear the now
// irrelevant companion field: moving away from link leaves the url in place
// (ToWire nulls it regardless), and moving to link with a custom_id present
// is rejected rather than silently dropping the id.
func (b *Button) SetStyle(style Style) error {
	if style == StyleLink && b.customID != "" {
		return fmt.Errorf("%w: both custom_id and url are set", ErrInvalidArgument)
	}
	if !style.IsValid() {
		return fmt.Errorf("%w: style must be between %d and %d", ErrInvalidArgument, StyleBlue, StyleLink)
	}
	b.style = style
	return nil
}

func (b *Button) SetLabel(label string) error {
	if label == "" && b.emoji == nil {
		return fmt.Errorf("%w: label must not be empty without an emoji", ErrInvalidArgument)
	}
	b.label = label
	return nil
}

func (b *Button) SetURL(url string) error {
	if url != "" && b.style != StyleLink {
		return fmt.Errorf("%w: url is only allowed when style is link", ErrInvalidArgument)
	}
	b.url = url
	return nil
}

func (b *Button) SetCustomID(customID string) error {
	if b.style == StyleLink {
		return fmt.Errorf("%w: link buttons carry no custom_id", ErrInvalidArgument)
	}
	b.customID = customID
	return nil
}

func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
}

func (b *Button) SetEmoji(emoji Emoji) {
	b.emoji = &emoji
}

func (b *Button) ComponentType() Type {
	return TypeButton
}

// ToWire maps the button to the platform JSON shape. The url field is
// emitted as null for every non-link style, whatever the internal value.
func (b *Button) ToWire() wire.Button {
	w := wire.Button{
		Type:     wire.TypeButton,
		Style:    int(b.style),
		Disabled: b.disabled,
	}
	if b.label != "" {
		label := b.label
		w.Label = &label
	}
	if b.customID != "" {
		customID := b.customID
		w.CustomID = &customID
	}
	if b.style == StyleLink {
		url := b.url
		w.URL = &url
	}
	if b.emoji != nil {
		emoji := b.emoji.ToWire()
		w.Emoji = &emoji
	}
	return w
}

func (b *Button) WireJSON() (json.RawMessage, error) {
	return json.Marshal(b.ToWire())
}

// ButtonFromWire rebuilds a button from inbound wire data through the
// validated constructor, so self-inconsistent payloads fail with
// ErrInvalidArgument.
func ButtonFromWire(w wire.Button) (*Button, error) {
	if w.Style == 0 {
		return nil, fmt.Errorf("%w: missing style", ErrInvalidArgument)
	}
	params := ButtonParams{
		Style:    Style(w.Style),
		Disabled: w.Disabled,
	}
	if w.Label != nil {
		params.Label = *w.Label
	}
	if w.CustomID != nil {
		params.CustomID = *w.CustomID
	}
	if w.URL != nil {
		params.URL = *w.URL
	}
	if w.Emoji != nil {
		emoji := EmojiFromWire(*w.Emoji)
		params.Emoji = &emoji
	}
	return NewButton(params)
}

func ButtonFromJSON(data []byte) (*Button, error) {
	var w wire.Button
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return ButtonFromWire(w)
}
