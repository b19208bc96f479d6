package ports

import (
	"context"

	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/modules/text/domain/types"
)

// Store is the backend boundary for corpus texts.
type Store interface {
	GetWithRelations(ctx context.Context, id string) (types.Text, map[string][]objecttypes.ObjectReference, error)
}
