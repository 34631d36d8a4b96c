// Package store keeps analyzed documents in memory for the API: a
// bounded, recency-ordered cache matching the app's reading history.
package store

import (
	"errors"
	"sync"

	"github.com/readable-app/readable/internal/document"
)

// ErrInvalidDocument is returned when a document fails shape validation.
var ErrInvalidDocument = errors.New("invalid document")

// DefaultCapacity matches the reading-history cap of the mobile client.
const DefaultCapacity = 50

// Store is a thread-safe in-memory document cache. Once the capacity is
// reached, saving a new document evicts the oldest one.
type Store struct {
	mu       sync.RWMutex
	docs     map[string]document.Document
	order    []string // ids, most recent first
	capacity int
}

// New creates a store holding at most capacity documents. Non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		docs:     make(map[string]document.Document),
		order:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Put validates and saves a document at the front of the history.
// Re-saving an existing id moves it to the front.
func (s *Store) Put(doc document.Document) error {
	if !document.Validate(&doc) {
		return ErrInvalidDocument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[doc.ID]; ok {
		s.removeIDLocked(doc.ID)
	}
	s.docs[doc.ID] = doc
	s.order = append([]string{doc.ID}, s.order...)

	for len(s.order) > s.capacity {
		oldest := s.order[len(s.order)-1]
		s.order = s.order[:len(s.order)-1]
		delete(s.docs, oldest)
	}
	return nil
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (document.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Delete removes a document, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	s.removeIDLocked(id)
	return true
}

// List returns all documents, most recent first.
func (s *Store) List() []document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]document.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Clear removes every document.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[string]document.Document)
	s.order = s.order[:0]
}

func (s *Store) removeIDLocked(id string) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
