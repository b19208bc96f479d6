package services

import (
	"context"
	"errors"

	"github.com/aegyptia/corpus-web/modules/object/domain/ports"
	"github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/pkg/httperr"
)

// Assemble fetches an object with its relations and derives the crosslink
// mapping and breadcrumb trail for its details page.
//
// A missing primary object is a hard failure (typed not-found); a broken
// cross-reference inside a relation degrades to an inert link. Tests pin
// this asymmetry.
func Assemble[T any](
	ctx context.Context,
	resolver Resolver,
	service ports.Service[T],
	id string,
	template string,
) (types.ObjectDetails[T], []types.BreadCrumb, error) {
	details, err := service.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return types.ObjectDetails[T]{}, nil, httperr.NewObjectNotFound(id, template)
		}
		return types.ObjectDetails[T]{}, nil, httperr.NewUpstream(err)
	}

	details.Links = make(map[string][]types.BreadCrumb, len(details.Relations))
	for name, refs := range details.Relations {
		details.Links[name] = resolver.Links(refs)
	}

	breadcrumbs := []types.BreadCrumb{
		types.LinkTo("/", "menu_global_home"),
		types.LinkTo("/search", "menu_global_search"),
		types.Caption("caption_details_" + template),
	}
	return details, breadcrumbs, nil
}
