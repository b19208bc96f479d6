package types

// ObjectDetails carries one domain object together with its named relations.
// A data service fills Object and Relations; the assembler derives Links
// from Relations. Instances live for a single request.
//
// Ordering within each relation is meaningful (chronological or rank order)
// and is preserved end to end.
type ObjectDetails[T any] struct {
	Object    T
	Relations map[string][]ObjectReference
	Links     map[string][]BreadCrumb
}
