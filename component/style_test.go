package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleIsValid(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		valid bool
	}{
		{name: "blue", style: StyleBlue, valid: true},
		{name: "gray", style: StyleGray, valid: true},
		{name: "green", style: StyleGreen, valid: true},
		{name: "red", style: StyleRed, valid: true},
		{name: "link", style: StyleLink, valid: true},
		{name: "zero", style: 0, valid: false},
		{name: "negative", style: -1, valid: false},
		{name: "above link", style: 6, valid: false},
		{name: "far out of range", style: 42, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.style.IsValid())
		})
	}
}

func TestStyleGreyAlias(t *testing.T) {
	assert.Equal(t, StyleGray, StyleGrey)
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "blue", StyleBlue.String())
	assert.Equal(t, "gray", StyleGray.String())
	assert.Equal(t, "green", StyleGreen.String())
	assert.Equal(t, "red", StyleRed.String())
	assert.Equal(t, "link", StyleLink.String())
	assert.Equal(t, "unknown", Style(9).String())
}

func TestRandomInteractiveStyle(t *testing.T) {
	seen := make(map[Style]bool)
	for i := 0; i < 1000; i++ {
		style := RandomInteractiveStyle()
		assert.True(t, style.IsValid())
		assert.NotEqual(t, StyleLink, style)
		seen[style] = true
	}
	// 1000 draws over four styles should hit every one of them.
	assert.Len(t, seen, 4)
}

func TestStyleMapping(t *testing.T) {
	mapping := StyleMapping()

	assert.Equal(t, map[string]Style{
		"blue":  StyleBlue,
		"gray":  StyleGray,
		"green": StyleGreen,
		"red":   StyleRed,
		"link":  StyleLink,
	}, mapping)

	// The returned map is a copy; callers cannot poison the table.
	mapping["blue"] = StyleRed
	assert.Equal(t, StyleBlue, StyleMapping()["blue"])
}
