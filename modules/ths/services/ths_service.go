package services

import (
	"context"

	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/modules/ths/domain/ports"
	"github.com/aegyptia/corpus-web/modules/ths/domain/types"
)

const Eclass = "BTSThsEntry"

type Service struct {
	store ports.Store
}

func NewService(store ports.Store) Service {
	return Service{store: store}
}

func (Service) Eclass() string { return Eclass }

func (s Service) GetDetails(ctx context.Context, id string) (objecttypes.ObjectDetails[types.Entry], error) {
	entry, relations, err := s.store.GetWithRelations(ctx, id)
	if err != nil {
		return objecttypes.ObjectDetails[types.Entry]{}, err
	}
	return objecttypes.ObjectDetails[types.Entry]{Object: entry, Relations: relations}, nil
}

func (Service) Label(e types.Entry) string { return e.Name }
