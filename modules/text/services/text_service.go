package services

import (
	"context"

	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/modules/text/domain/ports"
	"github.com/aegyptia/corpus-web/modules/text/domain/types"
)

const Eclass = "BTSText"

type Service struct {
	store ports.Store
}

func NewService(store ports.Store) Service {
	return Service{store: store}
}

func (Service) Eclass() string { return Eclass }

func (s Service) GetDetails(ctx context.Context, id string) (objecttypes.ObjectDetails[types.Text], error) {
	text, relations, err := s.store.GetWithRelations(ctx, id)
	if err != nil {
		return objecttypes.ObjectDetails[types.Text]{}, err
	}
	return objecttypes.ObjectDetails[types.Text]{Object: text, Relations: relations}, nil
}

func (Service) Label(t types.Text) string { return t.Name }
