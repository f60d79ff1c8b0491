package session

import (
	"context"
	"sync"
	"time"
)

// Memory 进程内实现，默认后端。过期条目在读到时顺手清掉。
type Memory struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token → 过期时刻
	now    func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (m *Memory) Add(_ context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = m.now().Add(ttl)
	return nil
}

func (m *Memory) Valid(_ context.Context, token string) bool {
	m.mu.RLock()
	exp, ok := m.tokens[token]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if m.now().After(exp) {
		m.mu.Lock()
		delete(m.tokens, token)
		m.mu.Unlock()
		return false
	}
	return true
}

func (m *Memory) Remove(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}
