package types

// Text is a corpus document: a witnessed source text with its editorial
// review state.
type Text struct {
	ID          string
	Name        string
	Type        string
	ReviewState string
}
