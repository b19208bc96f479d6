package persistence

import (
	"context"
	"sync"

	objectports "github.com/aegyptia/corpus-web/modules/object/domain/ports"
	objecttypes "github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/modules/ths/domain/types"
)

type thsEntryRecord struct {
	entry     types.Entry
	relations map[string][]objecttypes.ObjectReference
}

type ThsMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]thsEntryRecord
}

func NewThsMemoryStore() *ThsMemoryStore {
	return &ThsMemoryStore{entries: make(map[string]thsEntryRecord)}
}

func (s *ThsMemoryStore) Put(entry types.Entry, relations map[string][]objecttypes.ObjectReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = thsEntryRecord{entry: entry, relations: relations}
}

func (s *ThsMemoryStore) GetWithRelations(_ context.Context, id string) (types.Entry, map[string][]objecttypes.ObjectReference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.entries[id]
	if !ok {
		return types.Entry{}, nil, objectports.ErrNotFound
	}
	relations := make(map[string][]objecttypes.ObjectReference, len(record.relations))
	for name, refs := range record.relations {
		relations[name] = append([]objecttypes.ObjectReference(nil), refs...)
	}
	return record.entry, relations, nil
}
