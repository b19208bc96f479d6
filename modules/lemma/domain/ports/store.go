package ports

import (
	"context"

	"github.com/aegyptia/corpus-web/modules/lemma/domain/types"
	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
)

// Store is the backend boundary for lemma entries. GetWithRelations returns
// objectports.ErrNotFound when the id is unknown; relation slices keep the
// backend's ordering.
type Store interface {
	GetWithRelations(ctx context.Context, id string) (types.Lemma, map[string][]objecttypes.ObjectReference, error)
}
