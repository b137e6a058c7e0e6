package config

import (
	"github.com/sofmeright/badgen/src/badge"
)

// ResolveStyle builds the badge style for an item, layering the item's
// overrides over the shared defaults. A color of "auto" or "" keeps the
// status-driven color resolution for generation time.
func (b *BadgeItem) ResolveStyle(d Defaults) (badge.Style, error) {
	name := b.Style
	if name == "" {
		name = d.Style
	}
	if name == "" {
		name = "classic"
	}

	style, err := badge.ParseStyle(name)
	if err != nil {
		return badge.Style{}, err
	}

	if b.Color != "" && b.Color != "auto" {
		c, err := badge.ParseColor(b.Color)
		if err != nil {
			return badge.Style{}, err
		}
		style.Background = c
	}

	if b.LabelColor != "" {
		c, err := badge.ParseColor(b.LabelColor)
		if err != nil {
			return badge.Style{}, err
		}
		style.LabelBackground = &c
	}

	return style, nil
}

// ResolvePrecision returns the path precision for an item.
func (b *BadgeItem) ResolvePrecision(d Defaults) uint8 {
	if b.Precision != nil {
		return *b.Precision
	}
	return d.Precision
}

// ResolveFont returns the font selection for an item: a custom font file
// if one is set, otherwise a built-in font name.
func (b *BadgeItem) ResolveFont(d Defaults) (name, file string) {
	switch {
	case b.FontFile != "":
		return "", b.FontFile
	case b.Font != "":
		return b.Font, ""
	case d.FontFile != "":
		return "", d.FontFile
	case d.Font != "":
		return d.Font, ""
	}
	return "go-regular", ""
}
