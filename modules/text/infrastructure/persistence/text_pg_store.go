package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	objectports "github.com/aegyptia/corpus-web/modules/object/domain/ports"
	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	objectpersistence "github.com/aegyptia/corpus-web/modules/object/infrastructure/persistence"
	"github.com/aegyptia/corpus-web/modules/text/domain/ports"
	"github.com/aegyptia/corpus-web/modules/text/domain/types"
	textservices "github.com/aegyptia/corpus-web/modules/text/services"
)

type pgBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TextPGStore struct {
	pool pgBeginner
}

func NewTextPGStore(pool pgBeginner) ports.Store {
	return &TextPGStore{pool: pool}
}

func (s *TextPGStore) GetWithRelations(ctx context.Context, id string) (types.Text, map[string][]objecttypes.ObjectReference, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return types.Text{}, nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	var t types.Text
	err = tx.QueryRow(ctx, `
SELECT text_id, name, type, review_state
FROM corpus.texts
WHERE text_id = $1
`, id).Scan(&t.ID, &t.Name, &t.Type, &t.ReviewState)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Text{}, nil, objectports.ErrNotFound
		}
		return types.Text{}, nil, err
	}

	relations, err := objectpersistence.QueryRelations(ctx, tx, textservices.Eclass, id)
	if err != nil {
		return types.Text{}, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return types.Text{}, nil, err
	}
	return t, relations, nil
}
