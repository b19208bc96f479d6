package types

import "strings"

// Glyphs holds the hieroglyphic writing of a lemma in its encodings: the
// Manuel-de-Codage transcription, its unicode rendition and, when the
// backend provides one, a pre-rendered SVG.
type Glyphs struct {
	Unicode string
	Mdc     string
	Svg     string
}

// GlyphsOf builds a Glyphs value from an MdC transcription. The unicode
// rendition defaults to the transcription until the backend substitutes a
// proper one.
func GlyphsOf(mdc string) Glyphs {
	return Glyphs{Mdc: mdc, Unicode: mdc}
}

// IsEmpty reports whether no writing is recorded at all.
func (g Glyphs) IsEmpty() bool {
	return strings.TrimSpace(g.Unicode) == "" && strings.TrimSpace(g.Mdc) == ""
}
