package persistence

import (
	"context"
	"sync"

	objectports "github.com/aegyptia/corpus-web/modules/object/domain/ports"
	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/modules/text/domain/types"
)

type textEntry struct {
	text      types.Text
	relations map[string][]objecttypes.ObjectReference
}

type TextMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]textEntry
}

func NewTextMemoryStore() *TextMemoryStore {
	return &TextMemoryStore{entries: make(map[string]textEntry)}
}

func (s *TextMemoryStore) Put(text types.Text, relations map[string][]objecttypes.ObjectReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[text.ID] = textEntry{text: text, relations: relations}
}

func (s *TextMemoryStore) GetWithRelations(_ context.Context, id string) (types.Text, map[string][]objecttypes.ObjectReference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return types.Text{}, nil, objectports.ErrNotFound
	}
	relations := make(map[string][]objecttypes.ObjectReference, len(entry.relations))
	for name, refs := range entry.relations {
		relations[name] = append([]objecttypes.ObjectReference(nil), refs...)
	}
	return entry.text, relations, nil
}
