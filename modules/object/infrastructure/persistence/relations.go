package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aegyptia/corpus-web/modules/object/domain/types"
)

// QueryRelations loads the ordered references a subject points at, grouped
// by relation name. Every object type's pg store shares the relations table,
// keyed by subject eclass; position keeps the backend's ordering.
func QueryRelations(ctx context.Context, tx pgx.Tx, subjectEclass string, subjectID string) (map[string][]types.ObjectReference, error) {
	rows, err := tx.Query(ctx, `
SELECT relation, target_eclass, target_id, target_name, target_type
FROM corpus.object_relations
WHERE subject_eclass = $1 AND subject_id = $2
ORDER BY relation ASC, position ASC
`, subjectEclass, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	relations := make(map[string][]types.ObjectReference)
	for rows.Next() {
		var relation string
		var ref types.ObjectReference
		if err := rows.Scan(&relation, &ref.Eclass, &ref.ID, &ref.Name, &ref.Type); err != nil {
			return nil, err
		}
		relations[relation] = append(relations[relation], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return relations, nil
}
