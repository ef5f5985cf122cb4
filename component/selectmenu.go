package component

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/discordkit/components/wire"
)

const maxSelectOptions = 25

// SelectOption is one entry of a select menu. Label and value are required.
type SelectOption struct {
	Label       string
	Value       string
	Description string
	Emoji       *Emoji
	Default     bool
}

func (o SelectOption) toWire() wire.SelectOption {
	w := wire.SelectOption{
		Label:       o.Label,
		Value:       o.Value,
		Description: o.Description,
		Default:     o.Default,
	}
	if o.Emoji != nil {
		emoji := o.Emoji.ToWire()
		w.Emoji = &emoji
	}
	return w
}

func selectOptionFromWire(w wire.SelectOption) SelectOption {
	o := SelectOption{
		Label:       w.Label,
		Value:       w.Value,
		Description: w.Description,
		Default:     w.Default,
	}
	if w.Emoji != nil {
		emoji := EmojiFromWire(*w.Emoji)
		o.Emoji = &emoji
	}
	return o
}

// SelectMenu is a dropdown message component. It always carries between 1
// and 25 options and a custom_id (generated when not supplied).
type SelectMenu struct {
	customID    string
	options     []SelectOption
	placeholder string
	minValues   int
	maxValues   int
	disabled    bool
}

// SelectMenuParams are the constructor inputs for NewSelectMenu. Zero
// MinValues and MaxValues default to 1.
type SelectMenuParams struct {
	CustomID    string
	Options     []SelectOption
	Placeholder string
	MinValues   int
	MaxValues   int
	Disabled    bool
}

func NewSelectMenu(params SelectMenuParams) (*SelectMenu, error) {
	if err := validateOptions(params.Options); err != nil {
		return nil, err
	}

	minValues := params.MinValues
	if minValues == 0 {
		minValues = 1
	}
	maxValues := params.MaxValues
	if maxValues == 0 {
		maxValues = 1
	}
	if err := validateValueRange(minValues, maxValues, len(params.Options)); err != nil {
		return nil, err
	}

	customID := params.CustomID
	if customID == "" {
		customID = uuid.NewString()
	}

	return &SelectMenu{
		customID:    customID,
		options:     append([]SelectOption(nil), params.Options...),
		placeholder: params.Placeholder,
		minValues:   minValues,
		maxValues:   maxValues,
		disabled:    params.Disabled,
	}, nil
}

func validateOptions(options []SelectOption) error {
	if len(options) < 1 || len(options) > maxSelectOptions {
		return fmt.Errorf("%w: options length must be between 1 and %d", ErrInvalidArgument, maxSelectOptions)
	}
	for i, o := range options {
		if o.Label == "" {
			return fmt.Errorf("%w: option %d has no label", ErrInvalidArgument, i)
		}
		if o.Value == "" {
			return fmt.Errorf("%w: option %d has no value", ErrInvalidArgument, i)
		}
	}
	return nil
}

func validateValueRange(minValues, maxValues, optionCount int) error {
	if minValues < 1 || minValues > maxValues {
		return fmt.Errorf("%w: min_values must be between 1 and max_values", ErrInvalidArgument)
	}
	if maxValues > optionCount {
		return fmt.Errorf("%w: max_values exceeds the number of options", ErrInvalidArgument)
	}
	return nil
}

func (s *SelectMenu) CustomID() string    { return s.customID }
func (s *SelectMenu) Placeholder() string { return s.placeholder }
func (s *SelectMenu) MinValues() int      { return s.minValues }
func (s *SelectMenu) MaxValues() int      { return s.maxValues }
func (s *SelectMenu) Disabled() bool      { return s.disabled }

func (s *SelectMenu) Options() []SelectOption {
	return append([]SelectOption(nil), s.options...)
}

func (s *SelectMenu) SetOptions(options []SelectOption) error {
	if err := validateOptions(options); err != nil {
		return err
	}
	if err := validateValueRange(s.minValues, s.maxValues, len(options)); err != nil {
		return err
	}
	s.options = append([]SelectOption(nil), options...)
	return nil
}

func (s *SelectMenu) SetMinValues(minValues int) error {
	if err := validateValueRange(minValues, s.maxValues, len(s.options)); err != nil {
		return err
	}
	s.minValues = minValues
	return nil
}

func (s *SelectMenu) SetMaxValues(maxValues int) error {
	if err := validateValueRange(s.minValues, maxValues, len(s.options)); err != nil {
		return err
	}
	s.maxValues = maxValues
	return nil
}

func (s *SelectMenu) SetCustomID(customID string) {
	s.customID = customID
}

func (s *SelectMenu) SetPlaceholder(placeholder string) {
	s.placeholder = placeholder
}

func (s *SelectMenu) SetDisabled(disabled bool) {
	s.disabled = disabled
}

func (s *SelectMenu) ComponentType() Type {
	return TypeSelectMenu
}

func (s *SelectMenu) ToWire() wire.SelectMenu {
	options := make([]wire.SelectOption, len(s.options))
	for i, o := range s.options {
		options[i] = o.toWire()
	}
	return wire.SelectMenu{
		Type:        wire.TypeSelectMenu,
		CustomID:    s.customID,
		Options:     options,
		Placeholder: s.placeholder,
		MinValues:   s.minValues,
		MaxValues:   s.maxValues,
		Disabled:    s.disabled,
	}
}

func (s *SelectMenu) WireJSON() (json.RawMessage, error) {
	return json.Marshal(s.ToWire())
}

func SelectMenuFromWire(w wire.SelectMenu) (*SelectMenu, error) {
	options := make([]SelectOption, len(w.Options))
	for i, o := range w.Options {
		options[i] = selectOptionFromWire(o)
	}
	return NewSelectMenu(SelectMenuParams{
		CustomID:    w.CustomID,
		Options:     options,
		Placeholder: w.Placeholder,
		MinValues:   w.MinValues,
		MaxValues:   w.MaxValues,
		Disabled:    w.Disabled,
	})
}

func SelectMenuFromJSON(data []byte) (*SelectMenu, error) {
	var w wire.SelectMenu
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return SelectMenuFromWire(w)
}
