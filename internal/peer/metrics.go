package peer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cashbook_peer_connections",
		Help: "Number of live peer connections.",
	})

	stateBroadcastTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cashbook_state_broadcast_total",
		Help: "Total number of document broadcasts to peers.",
	})

	stateReceivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cashbook_state_received_total",
		Help: "Total number of documents received from peers.",
	})
)
