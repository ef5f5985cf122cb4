package component

import "math/rand"

// Style is a button's visual and behavioral kind. The numeric values are
// the platform's wire codes.
type Style int

const (
	StyleBlue  Style = 1
	StyleGray  Style = 2
	StyleGrey  Style = StyleGray
	StyleGreen Style = 3
	StyleRed   Style = 4
	StyleLink  Style = 5
)

var styleNames = map[string]Style{
	"blue":  StyleBlue,
	"gray":  StyleGray,
	"green": StyleGreen,
	"red":   StyleRed,
	"link":  StyleLink,
}

func (s Style) IsValid() bool {
	return s >= StyleBlue && s <= StyleLink
}

func (s Style) String() string {
	switch s {
	case StyleBlue:
		return "blue"
	case StyleGray:
		return "gray"
	case StyleGreen:
		return "green"
	case StyleRed:
		return "red"
	case StyleLink:
		return "link"
	default:
		return "unknown"
	}
}

// RandomInteractiveStyle picks one of the four interactive styles with
// uniform probability. StyleLink is excluded: a link button needs a URL,
// which cannot be fabricated.
func RandomInteractiveStyle() Style {
	return Style(rand.Intn(4) + 1)
}

// StyleMapping returns the name-to-code table of the named styles (the
// grey alias is not listed separately).
func StyleMapping() map[string]Style {
	m := make(map[string]Style, len(styleNames))
	for name, style := range styleNames {
		m[name] = style
	}
	return m
}
