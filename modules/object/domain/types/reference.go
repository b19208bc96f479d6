package types

// ObjectReference is a back-reference to a domain object of any type. It
// never owns the referenced object; it carries just enough to build a link
// to it on demand.
type ObjectReference struct {
	Eclass string `json:"eclass"`
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
}
