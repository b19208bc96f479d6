package ports

import (
	"context"

	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/modules/ths/domain/types"
)

// Store is the backend boundary for thesaurus entries.
type Store interface {
	GetWithRelations(ctx context.Context, id string) (types.Entry, map[string][]objecttypes.ObjectReference, error)
}
