package types

// Lemma is a dictionary entry: the headword of the corpus, carrying its
// hieroglyphic writing, part-of-speech subtype and editorial review state.
type Lemma struct {
	ID           string
	Name         string
	Type         string
	ReviewState  string
	Translations map[string][]string
	Glyphs       Glyphs
}
