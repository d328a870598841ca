// Package imageurl builds artwork URLs for catalog entries.
package imageurl

import (
	"fmt"
	"net/url"

	"github.com/Veraticus/dex/internal/model"
)

const spriteBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

// For returns the artwork URL for id in the given style. Shiny only applies
// to sprites.
func For(id int, style model.ImageStyle, shiny bool) string {
	if style == model.StyleSprite {
		if shiny {
			return fmt.Sprintf("%s/shiny/%d.png", spriteBase, id)
		}
		return fmt.Sprintf("%s/%d.png", spriteBase, id)
	}
	return fmt.Sprintf("%s/other/official-artwork/%d.png", spriteBase, id)
}

// FromRef returns the image reference carried by a record, or "" when it is
// absent, empty or not a URL.
func FromRef(ref *string) string {
	if ref == nil || *ref == "" {
		return ""
	}
	if _, err := url.Parse(*ref); err != nil {
		return ""
	}
	return *ref
}

// ForEntry prefers the record's own image and falls back to For.
func ForEntry(e model.Entry, style model.ImageStyle, shiny bool) string {
	if style != model.StyleSprite {
		if ref := FromRef(e.Image); ref != "" {
			return ref
		}
	}
	return For(e.ID, style, shiny)
}
