package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/aegyptia/corpus-web/modules/lemma/domain/ports"
	"github.com/aegyptia/corpus-web/modules/lemma/domain/types"
	lemmaservices "github.com/aegyptia/corpus-web/modules/lemma/services"
	objectports "github.com/aegyptia/corpus-web/modules/object/domain/ports"
	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	objectpersistence "github.com/aegyptia/corpus-web/modules/object/infrastructure/persistence"
)

type pgBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type LemmaPGStore struct {
	pool pgBeginner
}

func NewLemmaPGStore(pool pgBeginner) ports.Store {
	return &LemmaPGStore{pool: pool}
}

func (s *LemmaPGStore) GetWithRelations(ctx context.Context, id string) (types.Lemma, map[string][]objecttypes.ObjectReference, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return types.Lemma{}, nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	var l types.Lemma
	err = tx.QueryRow(ctx, `
SELECT lemma_id, name, type, review_state, glyphs_unicode, glyphs_mdc, glyphs_svg
FROM corpus.lemmata
WHERE lemma_id = $1
`, id).Scan(&l.ID, &l.Name, &l.Type, &l.ReviewState, &l.Glyphs.Unicode, &l.Glyphs.Mdc, &l.Glyphs.Svg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Lemma{}, nil, objectports.ErrNotFound
		}
		return types.Lemma{}, nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT lang, translation
FROM corpus.lemma_translations
WHERE lemma_id = $1
ORDER BY lang ASC, position ASC
`, id)
	if err != nil {
		return types.Lemma{}, nil, err
	}
	for rows.Next() {
		var lang, translation string
		if err := rows.Scan(&lang, &translation); err != nil {
			rows.Close()
			return types.Lemma{}, nil, err
		}
		if l.Translations == nil {
			l.Translations = make(map[string][]string)
		}
		l.Translations[lang] = append(l.Translations[lang], translation)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return types.Lemma{}, nil, err
	}
	rows.Close()

	relations, err := objectpersistence.QueryRelations(ctx, tx, lemmaservices.Eclass, id)
	if err != nil {
		return types.Lemma{}, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return types.Lemma{}, nil, err
	}
	return l, relations, nil
}
