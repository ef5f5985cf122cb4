package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonJSON_NullableFields(t *testing.T) {
	// label, custom_id, and url are explicit-null when absent; emoji is
	// omitted entirely.
	data, err := json.Marshal(Button{Type: TypeButton, Style: 2})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": 2,
		"style": 2,
		"label": null,
		"custom_id": null,
		"url": null,
		"disabled": false
	}`, string(data))
}

func TestEmojiJSON_OptionalFields(t *testing.T) {
	t.Run("unicode emoji omits animated and id", func(t *testing.T) {
		data, err := json.Marshal(Emoji{Name: "👍"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "👍"}`, string(data))
	})

	t.Run("custom animated emoji carries all fields", func(t *testing.T) {
		data, err := json.Marshal(Emoji{Name: "blob", Animated: true, ID: "42"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "blob", "animated": true, "id": "42"}`, string(data))
	})
}

func TestTypeExtractor(t *testing.T) {
	payload := []byte(`{"type": 3, "custom_id": "picker", "options": []}`)

	var probe TypeExtractor
	require.NoError(t, json.Unmarshal(payload, &probe))
	assert.Equal(t, TypeSelectMenu, probe.Type)
}

func TestSelectMenuJSON_OmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(SelectMenu{
		Type:      TypeSelectMenu,
		CustomID:  "picker",
		Options:   []SelectOption{{Label: "A", Value: "a"}},
		MinValues: 1,
		MaxValues: 1,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": 3,
		"custom_id": "picker",
		"options": [{"label": "A", "value": "a"}],
		"min_values": 1,
		"max_values": 1
	}`, string(data))
}
