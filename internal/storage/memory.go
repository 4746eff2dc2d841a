// ABOUTME: In-memory Backend implementation.
// ABOUTME: Used by tests and ephemeral runs; nothing touches disk.
package storage

// MemoryBackend keeps collection documents in a map.
type MemoryBackend struct {
	docs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

// Get returns a copy of the stored document, or (nil, nil) if absent.
func (m *MemoryBackend) Get(collection string) ([]byte, error) {
	doc, ok := m.docs[collection]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

// Set stores a copy of the document under the collection name.
func (m *MemoryBackend) Set(collection string, doc []byte) error {
	cp := make([]byte, len(doc))
	copy(cp, doc)
	m.docs[collection] = cp
	return nil
}

// Delete removes the collection document if present.
func (m *MemoryBackend) Delete(collection string) error {
	delete(m.docs, collection)
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *MemoryBackend) Close() error { return nil }
