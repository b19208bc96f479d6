package services

import (
	"context"

	"github.com/aegyptia/corpus-web/modules/lemma/domain/ports"
	"github.com/aegyptia/corpus-web/modules/lemma/domain/types"
	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
)

const Eclass = "BTSLemmaEntry"

// Service adapts a lemma store to the generic object-details contract.
type Service struct {
	store ports.Store
}

func NewService(store ports.Store) Service {
	return Service{store: store}
}

func (Service) Eclass() string { return Eclass }

func (s Service) GetDetails(ctx context.Context, id string) (objecttypes.ObjectDetails[types.Lemma], error) {
	lemma, relations, err := s.store.GetWithRelations(ctx, id)
	if err != nil {
		return objecttypes.ObjectDetails[types.Lemma]{}, err
	}
	return objecttypes.ObjectDetails[types.Lemma]{Object: lemma, Relations: relations}, nil
}

func (Service) Label(l types.Lemma) string { return l.Name }
