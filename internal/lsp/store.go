package lsp

import "sync"

// Store holds the server's view of every open document's text, keyed by
// URI. glsp may deliver notifications from concurrent goroutines, so all
// access goes through the lock.
type Store struct {
	mu   sync.RWMutex
	text map[string]string
}

func NewStore() *Store {
	return &Store{text: map[string]string{}}
}

// Put records the full text for uri, replacing any previous version.
func (s *Store) Put(uri, text string) {
	s.mu.Lock()
	s.text[uri] = text
	s.mu.Unlock()
}

// Text returns the last known text for uri, if the document is open.
func (s *Store) Text(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.text[uri]
	return t, ok
}

// Forget drops a closed document.
func (s *Store) Forget(uri string) {
	s.mu.Lock()
	delete(s.text, uri)
	s.mu.Unlock()
}
