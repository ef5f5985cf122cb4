// Package component models the interactive pieces attached to a chat
// message: buttons, select menus, and the action rows that group them.
// Every entity is validated on construction and on each mutation; the
// ToWire/FromWire pairs map entities to the platform's JSON shapes in
// package wire.
package component

import (
	"encoding/json"
	"fmt"

	"github.com/discordkit/components/wire"
)

// Type is the wire discriminator of a component.
type Type int

const (
	TypeActionRow  Type = wire.TypeActionRow
	TypeButton     Type = wire.TypeButton
	TypeSelectMenu Type = wire.TypeSelectMenu
)

// Component is any message component that can serialize itself to the
// platform's JSON representation.
type Component interface {
	ComponentType() Type
	WireJSON() (json.RawMessage, error)
}

// FromWireJSON decodes a single component payload by its "type" field.
// Self-inconsistent payloads fail with ErrInvalidArgument, the same as
// direct construction would.
func FromWireJSON(data []byte) (Component, error) {
	var probe wire.TypeExtractor
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch Type(probe.Type) {
	case TypeActionRow:
		return ActionRowFromJSON(data)
	case TypeButton:
		return ButtonFromJSON(data)
	case TypeSelectMenu:
		return SelectMenuFromJSON(data)
	default:
		return nil, fmt.Errorf("%w: unknown component type %d", ErrInvalidArgument, probe.Type)
	}
}
