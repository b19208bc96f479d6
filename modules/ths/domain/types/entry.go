package types

// Entry is a thesaurus entry: a node in the hierarchically organized
// vocabulary of places, dates, persons and objects referenced by texts.
type Entry struct {
	ID   string
	Name string
	Type string
}
