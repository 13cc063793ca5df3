package artifact

import (
	"fmt"
	"sync"
	"time"
)

// Handle references an artifact held by a Store. Handles are unique
// for the lifetime of the store and never reused, even after
// revocation.
type Handle string

// Artifact is an exported blob: encoded bytes plus the metadata a
// consumer needs to save or serve them. Artifacts are immutable after
// creation.
type Artifact struct {
	Data []byte
	MIME string
	Name string
}

// Store is an in-memory artifact registry. Handles resolve until they
// are revoked; revocation is explicit, forgetting it keeps the blob
// alive for the life of the store.
type Store struct {
	mu      sync.Mutex
	next    int
	entries map[Handle]*Artifact
}

// NewStore creates an empty artifact store.
func NewStore() *Store {
	return &Store{entries: make(map[Handle]*Artifact)}
}

// Create registers a copy of data and returns its handle.
func (s *Store) Create(data []byte, mime, name string) Handle {
	blob := make([]byte, len(data))
	copy(blob, data)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := Handle(fmt.Sprintf("mem:%d", s.next))
	s.entries[h] = &Artifact{Data: blob, MIME: mime, Name: name}

	return h
}

// Resolve returns the artifact for h, or false if h was never issued
// or has been revoked. The returned data must not be modified.
func (s *Store) Resolve(h Handle) (*Artifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.entries[h]

	return a, ok
}

// Revoke releases the artifact behind h. Revoking an unknown or
// already revoked handle is a no-op.
func (s *Store) Revoke(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, h)
}

// RevokeAll releases every live artifact.
func (s *Store) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.entries)
}

// Len reports the number of live artifacts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// RecordingName builds the canonical filename for an exported take,
// encoding the capture time and sample rate.
func RecordingName(t time.Time, sampleRate int) string {
	return fmt.Sprintf("recording-%d-%dhz.wav", t.Unix(), sampleRate)
}
