// Package discovery отвечает за объявление локального устройства в сети
// и разрешение идентификатора удаленного устройства в адрес, по которому
// можно установить соединение. Транспортный слой зависит только от этого
// контракта, а не от конкретного механизма обнаружения.
package discovery

import "context"

// Resolver resolves a peer identifier to a dialable host:port address
type Resolver interface {
	// Resolve returns the address the peer with the given identifier
	// is currently listening on. Returns an error when the peer cannot
	// be found within the resolver's own deadline.
	Resolve(ctx context.Context, peerID string) (string, error)
}

// Announcer advertises the local peer so other devices can resolve it
type Announcer interface {
	// Announce registers the local peer identifier at the given port.
	Announce(peerID string, port int) error

	// Shutdown withdraws the announcement
	Shutdown()
}
