package peer

import (
	"sync"

	"github.com/gorilla/websocket"
)

// sendQueueSize размер очереди исходящих сообщений одного соединения
const sendQueueSize = 16

// Conn представляет одно установленное соединение с удаленным устройством.
// Чтение и запись обслуживаются отдельными горутинами сессии (readPump и
// writePump); снаружи соединение только ставит сообщения в очередь отправки.
type Conn struct {
	ws   *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool

	remoteAddr string
	outbound   bool
}

func newConn(ws *websocket.Conn, outbound bool) *Conn {
	return &Conn{
		ws:         ws,
		send:       make(chan []byte, sendQueueSize),
		remoteAddr: ws.RemoteAddr().String(),
		outbound:   outbound,
	}
}

// Open reports whether the connection still accepts outgoing messages
func (c *Conn) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

// RemoteAddr returns the remote network address of the connection
func (c *Conn) RemoteAddr() string {
	return c.remoteAddr
}

// enqueue ставит сообщение в очередь отправки.
// Возвращает false, если соединение закрыто или очередь переполнена —
// доставка best-effort, без очередей повторной отправки и без гарантий.
func (c *Conn) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// close помечает соединение закрытым и останавливает writePump.
// Безопасно вызывать повторно.
func (c *Conn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
