package services

import (
	"github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/pkg/eclass"
)

// Resolver turns object references into navigable links by consulting the
// eclass registry. It is stateless and safe for concurrent use.
type Resolver struct {
	registry *eclass.Registry
}

func NewResolver(registry *eclass.Registry) Resolver {
	return Resolver{registry: registry}
}

// Link resolves a reference into a crosslink crumb. A reference whose eclass
// has no registered controller yields an inert crumb with the display name
// intact; broken cross-references never abort rendering.
func (r Resolver) Link(ref types.ObjectReference) types.BreadCrumb {
	href, err := r.registry.DetailsPath(ref.Eclass, ref.ID)
	if err != nil {
		href = ""
	}
	crumb := types.PathSegment(href, ref.Name, ref.Eclass, ref.Type)
	if crumb.Label == "" {
		if template, err := r.registry.TemplateFor(ref.Eclass); err == nil {
			crumb.MsgKey = "caption_details_" + template
		}
	}
	return crumb
}

// Links resolves a slice of references, preserving their order.
func (r Resolver) Links(refs []types.ObjectReference) []types.BreadCrumb {
	out := make([]types.BreadCrumb, len(refs))
	for i, ref := range refs {
		out[i] = r.Link(ref)
	}
	return out
}
