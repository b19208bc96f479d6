package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	objectports "github.com/aegyptia/corpus-web/modules/object/domain/ports"
	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	objectpersistence "github.com/aegyptia/corpus-web/modules/object/infrastructure/persistence"
	"github.com/aegyptia/corpus-web/modules/ths/domain/ports"
	"github.com/aegyptia/corpus-web/modules/ths/domain/types"
	thsservices "github.com/aegyptia/corpus-web/modules/ths/services"
)

type pgBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type ThsPGStore struct {
	pool pgBeginner
}

func NewThsPGStore(pool pgBeginner) ports.Store {
	return &ThsPGStore{pool: pool}
}

func (s *ThsPGStore) GetWithRelations(ctx context.Context, id string) (types.Entry, map[string][]objecttypes.ObjectReference, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return types.Entry{}, nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	var e types.Entry
	err = tx.QueryRow(ctx, `
SELECT entry_id, name, type
FROM corpus.ths_entries
WHERE entry_id = $1
`, id).Scan(&e.ID, &e.Name, &e.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Entry{}, nil, objectports.ErrNotFound
		}
		return types.Entry{}, nil, err
	}

	relations, err := objectpersistence.QueryRelations(ctx, tx, thsservices.Eclass, id)
	if err != nil {
		return types.Entry{}, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return types.Entry{}, nil, err
	}
	return e, relations, nil
}
