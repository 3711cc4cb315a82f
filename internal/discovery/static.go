package discovery

import (
	"context"
	"fmt"
	"sync"
)

// Static разрешает идентификаторы по фиксированной таблице.
// Используется в тестах и при запуске с явно заданным адресом редактора,
// когда mDNS в сети недоступен.
type Static struct {
	mu    sync.RWMutex
	addrs map[string]string
}

// NewStatic создает статический resolver
func NewStatic() *Static {
	return &Static{addrs: make(map[string]string)}
}

// Set associates a peer identifier with a host:port address
func (s *Static) Set(peerID, addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addrs[peerID] = addr
}

// Resolve returns the address registered for the peer identifier
func (s *Static) Resolve(ctx context.Context, peerID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addr, ok := s.addrs[peerID]
	if !ok {
		return "", fmt.Errorf("peer %q not found", peerID)
	}
	return addr, nil
}
