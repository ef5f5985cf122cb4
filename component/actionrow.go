package component

import (
	"encoding/json"
	"fmt"

	"github.com/discordkit/components/wire"
)

const maxRowComponents = 5

// ActionRow groups up to five buttons, or exactly one select menu, for
// placement on a message. Rows do not nest.
type ActionRow struct {
	components []Component
}

func NewActionRow(components ...Component) (*ActionRow, error) {
	if err := validateRow(components); err != nil {
		return nil, err
	}
	return &ActionRow{components: append([]Component(nil), components...)}, nil
}

func validateRow(components []Component) error {
	if len(components) == 0 {
		return fmt.Errorf("%w: an action row needs at least one component", ErrInvalidArgument)
	}
	if len(components) > maxRowComponents {
		return fmt.Errorf("%w: an action row holds at most %d components", ErrInvalidArgument, maxRowComponents)
	}
	for _, c := range components {
		switch c.ComponentType() {
		case TypeActionRow:
			return fmt.Errorf("%w: action rows cannot be nested", ErrInvalidArgument)
		case TypeSelectMenu:
			if len(components) > 1 {
				return fmt.Errorf("%w: a select menu must be the only component in a row", ErrInvalidArgument)
			}
		}
	}
	return nil
}

func (r *ActionRow) Components() []Component {
	return append([]Component(nil), r.components...)
}

func (r *ActionRow) Append(c Component) error {
	if err := validateRow(append(r.Components(), c)); err != nil {
		return err
	}
	r.components = append(r.components, c)
	return nil
}

func (r *ActionRow) ComponentType() Type {
	return TypeActionRow
}

func (r *ActionRow) ToWire() (wire.ActionRow, error) {
	components := make([]json.RawMessage, len(r.components))
	for i, c := range r.components {
		raw, err := c.WireJSON()
		if err != nil {
			return wire.ActionRow{}, err
		}
		components[i] = raw
	}
	return wire.ActionRow{Type: wire.TypeActionRow, Components: components}, nil
}

func (r *ActionRow) WireJSON() (json.RawMessage, error) {
	w, err := r.ToWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func ActionRowFromWire(w wire.ActionRow) (*ActionRow, error) {
	components := make([]Component, len(w.Components))
	for i, raw := range w.Components {
		c, err := FromWireJSON(raw)
		if err != nil {
			return nil, err
		}
		components[i] = c
	}
	return NewActionRow(components...)
}

func ActionRowFromJSON(data []byte) (*ActionRow, error) {
	var w wire.ActionRow
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return ActionRowFromWire(w)
}
