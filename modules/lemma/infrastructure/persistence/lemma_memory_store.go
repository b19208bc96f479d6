package persistence

import (
	"context"
	"sync"

	"github.com/aegyptia/corpus-web/modules/lemma/domain/types"
	objectports "github.com/aegyptia/corpus-web/modules/object/domain/ports"
	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
)

type lemmaEntry struct {
	lemma     types.Lemma
	relations map[string][]objecttypes.ObjectReference
}

// LemmaMemoryStore backs the lemma service when no database is configured.
type LemmaMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]lemmaEntry
}

func NewLemmaMemoryStore() *LemmaMemoryStore {
	return &LemmaMemoryStore{entries: make(map[string]lemmaEntry)}
}

func (s *LemmaMemoryStore) Put(lemma types.Lemma, relations map[string][]objecttypes.ObjectReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[lemma.ID] = lemmaEntry{lemma: lemma, relations: relations}
}

func (s *LemmaMemoryStore) GetWithRelations(_ context.Context, id string) (types.Lemma, map[string][]objecttypes.ObjectReference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return types.Lemma{}, nil, objectports.ErrNotFound
	}
	relations := make(map[string][]objecttypes.ObjectReference, len(entry.relations))
	for name, refs := range entry.relations {
		relations[name] = append([]objecttypes.ObjectReference(nil), refs...)
	}
	return entry.lemma, relations, nil
}
