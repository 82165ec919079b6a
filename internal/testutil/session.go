package testutil

import (
	"context"
	"sync"
	"time"
)

// MemorySessionStore 内存会话存储，替代Redis
// 不处理过期，测试只关心是否写入
type MemorySessionStore struct {
	mu        sync.Mutex
	sessions  map[uint]map[string]interface{}
	blacklist map[string]time.Duration
}

// NewMemorySessionStore 创建内存会话存储
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions:  make(map[uint]map[string]interface{}),
		blacklist: make(map[string]time.Duration),
	}
}

func (s *MemorySessionStore) SaveSession(_ context.Context, userID uint, data map[string]interface{}, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = data
	return nil
}

func (s *MemorySessionStore) DeleteSession(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

func (s *MemorySessionStore) AddToBlacklist(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blacklist[token] = ttl
	return nil
}

func (s *MemorySessionStore) IsInBlacklist(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blacklist[token]
	return ok, nil
}

// HasSession 用户是否存在会话
func (s *MemorySessionStore) HasSession(_ context.Context, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	return ok, nil
}
