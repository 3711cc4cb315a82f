package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// mdnsService имя mDNS сервиса кассовой книги
	mdnsService = "_cashbook._tcp"
	// mdnsDomain локальный домен
	mdnsDomain = "local."
	// resolveTimeout сколько ждем появления peer в сети при разрешении
	resolveTimeout = 5 * time.Second
)

// MDNS реализует объявление и разрешение устройств через mDNS (zeroconf).
// Идентификатор устройства используется как имя экземпляра сервиса, поэтому
// каждое устройство в локальной сети может быть найдено по своему peer ID.
type MDNS struct {
	server *zeroconf.Server
	logger *slog.Logger
}

// NewMDNS создает mDNS discovery
func NewMDNS(logger *slog.Logger) *MDNS {
	return &MDNS{logger: logger}
}

// Announce registers the local peer identifier at the given port
func (m *MDNS) Announce(peerID string, port int) error {
	server, err := zeroconf.Register(peerID, mdnsService, mdnsDomain, port, []string{"txtv=0"}, nil)
	if err != nil {
		return fmt.Errorf("failed to register mdns service: %w", err)
	}

	m.server = server
	m.logger.Info("mdns service registered", "peer_id", peerID, "port", port)
	return nil
}

// Shutdown withdraws the announcement
func (m *MDNS) Shutdown() {
	if m.server != nil {
		m.server.Shutdown()
		m.server = nil
	}
}

// Resolve ищет устройство с заданным идентификатором в локальной сети.
// Просматривает анонсы сервиса и возвращает адрес первого экземпляра,
// чье имя совпадает с peerID.
func (m *MDNS) Resolve(ctx context.Context, peerID string) (string, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return "", fmt.Errorf("failed to initialize mdns resolver: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	if err := resolver.Browse(ctx, mdnsService, mdnsDomain, entries); err != nil {
		return "", fmt.Errorf("failed to browse mdns services: %w", err)
	}

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return "", fmt.Errorf("peer %q not found", peerID)
			}
			if entry == nil || entry.Instance != peerID {
				continue
			}
			if len(entry.AddrIPv4) == 0 {
				continue
			}
			addr := fmt.Sprintf("%s:%d", entry.AddrIPv4[0], entry.Port)
			m.logger.Debug("mdns peer resolved", "peer_id", peerID, "addr", addr)
			return addr, nil
		case <-ctx.Done():
			return "", fmt.Errorf("peer %q not found", peerID)
		}
	}
}
