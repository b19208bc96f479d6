package ports

import (
	"context"
	"errors"

	"github.com/aegyptia/corpus-web/modules/object/domain/types"
)

// ErrNotFound is returned by a Service when the requested id does not exist
// upstream. The assembler turns it into a typed not-found error carrying the
// owning controller's template name.
var ErrNotFound = errors.New("object not found")

// Service is the data-access boundary for one domain-object type: it fetches
// an object together with its relations and knows how to label instances.
type Service[T any] interface {
	Eclass() string
	GetDetails(ctx context.Context, id string) (types.ObjectDetails[T], error)
	Label(obj T) string
}
