package id

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// UUIDGenerator hands out random version 4 UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator { return UUIDGenerator{} }

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Sequence hands out deterministic ids such as "order-1", "order-2".
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	if s.prefix == "" {
		return fmt.Sprintf("%d", s.next)
	}
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}
