package isr

import (
	"container/list"
	"context"
	"sync"
)

const DefaultMaxEntries = 1024

// MemoryStore is a bounded in-process LRU store.
type MemoryStore[V any] struct {
	mu    sync.Mutex
	max   int
	order *list.List
	items map[string]*list.Element
}

type memoryItem[V any] struct {
	key   string
	entry Entry[V]
}

func NewMemoryStore[V any](maxEntries int) *MemoryStore[V] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore[V]{
		max:   maxEntries,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

func (s *MemoryStore[V]) Load(_ context.Context, key string) (Entry[V], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.items[key]
	if !ok {
		return Entry[V]{}, false, nil
	}
	s.order.MoveToFront(el)
	return el.Value.(*memoryItem[V]).entry, true, nil
}

func (s *MemoryStore[V]) Save(_ context.Context, key string, e Entry[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.items[key]; ok {
		el.Value.(*memoryItem[V]).entry = e
		s.order.MoveToFront(el)
		return nil
	}
	s.items[key] = s.order.PushFront(&memoryItem[V]{key: key, entry: e})
	for s.order.Len() > s.max {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.items, oldest.Value.(*memoryItem[V]).key)
	}
	return nil
}

// Keys lists keys from most to least recently used.
func (s *MemoryStore[V]) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*memoryItem[V]).key)
	}
	return keys, nil
}

func (s *MemoryStore[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
