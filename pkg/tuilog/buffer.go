package tuilog

import "sync"

// DefaultCapacity is the number of entries a Buffer retains when no
// capacity is configured.
const DefaultCapacity = 1024

// Buffer holds the most recent log entries for the UI. It is safe for
// concurrent use by any number of writers and one reader. Storage is a
// fixed-size ring, so memory stays bounded regardless of append volume.
type Buffer struct {
	mu      sync.Mutex
	entries []Entry
	head    int
	count   int
}

// NewBuffer creates a Buffer that retains at most capacity entries.
// Non-positive capacities fall back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{entries: make([]Entry, capacity)}
}

// Append adds an entry at the end of the buffer. When the buffer is full
// the oldest entry is evicted first. Append never fails.
func (b *Buffer) Append(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count == len(b.entries) {
		b.entries[b.head] = entry
		b.head = (b.head + 1) % len(b.entries)
		return
	}
	b.entries[(b.head+b.count)%len(b.entries)] = entry
	b.count++
}

// Snapshot returns a copy of the buffered entries in insertion order,
// taken at a single consistent instant.
func (b *Buffer) Snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.entries[(b.head+i)%len(b.entries)]
	}
	return out
}

// Len returns the number of entries currently buffered.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Cap returns the maximum number of entries the buffer retains.
func (b *Buffer) Cap() int {
	return len(b.entries)
}

// Clear discards all buffered entries.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.head = 0
	b.count = 0
}
