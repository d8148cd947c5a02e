package testutil

import (
	"context"
	"sort"
	"sync"

	domain "github.com/dieselmedia/booking-api/internal/domain/contact"
	"github.com/dieselmedia/booking-api/internal/errs"
	"github.com/dieselmedia/booking-api/internal/models"
)

type InMemoryContactStore struct {
	mu       sync.RWMutex
	messages map[string]models.ContactMessage

	Err error
}

func NewInMemoryContactStore() *InMemoryContactStore {
	return &InMemoryContactStore{messages: make(map[string]models.ContactMessage)}
}

func (s *InMemoryContactStore) Insert(_ context.Context, m *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	s.messages[m.ID] = *m
	return nil
}

func (s *InMemoryContactStore) ListRecent(_ context.Context, limit int) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemoryContactStore) GetByID(_ context.Context, id string) (*models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}
	m, ok := s.messages[id]
	if !ok {
		return nil, errs.NotFound("message")
	}
	return &m, nil
}

func (s *InMemoryContactStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.messages[id]; !ok {
		return errs.NotFound("message")
	}
	delete(s.messages, id)
	return nil
}

func (s *InMemoryContactStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

var _ domain.Repository = (*InMemoryContactStore)(nil)
