package peer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/iudanet/cashbook/internal/discovery"
	"github.com/iudanet/cashbook/internal/models"
	"github.com/iudanet/cashbook/internal/storage"
	"github.com/iudanet/cashbook/pkg/api"
)

const (
	// PlaceholderID возвращается из LocalID до назначения идентичности
	PlaceholderID = "initializing"

	// eventQueueSize размер буфера канала событий сессии
	eventQueueSize = 64
)

// Session владеет идентичностью устройства и набором живых соединений.
// Ровно одна сессия на процесс; живет весь запуск устройства.
//
// Идентичность назначается при создании: предпочитается сохраненный ранее
// идентификатор (устройство остается доступным по тому же адресу между
// перезапусками), иначе генерируется новый и сохраняется на будущее.
type Session struct {
	resolver discovery.Resolver
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	localID  string
	conns    []*Conn
	outbound *Conn

	events chan Event
}

// NewSession создает сессию и назначает устройству идентичность.
func NewSession(ctx context.Context, pairing storage.PairingStorage, resolver discovery.Resolver, logger *slog.Logger) (*Session, error) {
	s := &Session{
		resolver: resolver,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		events: make(chan Event, eventQueueSize),
	}

	id, err := pairing.GetPeerID(ctx)
	if err != nil {
		// Сохраненной идентичности нет (или она не читается) — назначаем новую
		id = uuid.NewString()
		if saveErr := pairing.SavePeerID(ctx, id); saveErr != nil {
			logger.Warn("failed to persist peer id", "error", saveErr)
		}
		logger.Info("assigned new peer id", "peer_id", id)
	} else {
		logger.Info("reusing persisted peer id", "peer_id", id)
	}
	s.localID = id

	return s, nil
}

// LocalID возвращает идентификатор устройства,
// либо заглушку, если идентичность еще не назначена.
func (s *Session) LocalID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.localID == "" {
		return PlaceholderID
	}
	return s.localID
}

// Events возвращает канал событий сессии.
// Канал один и упорядочен; потребитель — цикл контроллера репликации.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Peers возвращает число активных соединений
func (s *Session) Peers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Handler возвращает HTTP handler, принимающий входящие соединения.
// Входящие принимаются безусловно и добавляются в активный набор:
// редактор обслуживает произвольное число зрителей одновременно.
func (s *Session) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Warn("websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
			return
		}

		conn := newConn(ws, false)
		s.add(conn)
		s.logger.Info("inbound connection", "remote_addr", conn.RemoteAddr(), "peers", s.Peers())

		// Opened уходит в канал до запуска readPump,
		// чтобы данные с этого соединения не обогнали само событие
		s.emit(Event{Kind: EventOpened, Conn: conn, Outbound: false})
		go s.writePump(conn)
		go s.readPump(conn)
	}
}

// Connect асинхронно устанавливает исходящее соединение с устройством remoteID.
// Результат наблюдается только через события: Opened при успехе, Errored при неудаче.
// Таймаута сверх дедлайна resolver нет; прежнее исходящее соединение здесь
// не разрывается — teardown делает pairing state machine до вызова Connect.
func (s *Session) Connect(remoteID string) {
	go func() {
		addr, err := s.resolver.Resolve(context.Background(), remoteID)
		if err != nil {
			s.emit(Event{Kind: EventErrored, Reason: fmt.Sprintf("resolve %s: %v", remoteID, err), Outbound: true})
			return
		}

		url := fmt.Sprintf("ws://%s/ws", addr)
		ws, resp, err := websocket.DefaultDialer.Dial(url, nil) //nolint:bodyclose // resp.Body не используется
		if err != nil {
			s.emit(Event{Kind: EventErrored, Reason: fmt.Sprintf("dial %s: %v", addr, err), Outbound: true})
			return
		}
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		conn := newConn(ws, true)
		s.mu.Lock()
		s.conns = append(s.conns, conn)
		s.outbound = conn
		s.mu.Unlock()
		peerConnections.Inc()

		s.logger.Info("outbound connection established", "remote_id", remoteID, "addr", addr)
		s.emit(Event{Kind: EventOpened, Conn: conn, Outbound: true})
		go s.writePump(conn)
		go s.readPump(conn)
	}()
}

// Disconnect разрывает текущее исходящее соединение, если оно есть.
func (s *Session) Disconnect() {
	s.mu.Lock()
	conn := s.outbound
	s.outbound = nil
	s.mu.Unlock()

	if conn != nil {
		conn.close()
	}
}

// Send отправляет документ по одному соединению.
// Best-effort: молча пропускается, если соединение уже не открыто.
func (s *Session) Send(conn *Conn, doc *models.Document) {
	raw, err := encodeState(doc)
	if err != nil {
		s.logger.Error("failed to encode document", "error", err)
		return
	}

	if !conn.enqueue(raw) {
		s.logger.Debug("send skipped, connection not open", "remote_addr", conn.RemoteAddr())
	}
}

// Broadcast отправляет документ всем открытым соединениям.
// Частичная доставка (часть устройств недоступна) не считается ошибкой.
func (s *Session) Broadcast(doc *models.Document) {
	raw, err := encodeState(doc)
	if err != nil {
		s.logger.Error("failed to encode document", "error", err)
		return
	}

	s.mu.Lock()
	conns := make([]*Conn, len(s.conns))
	copy(conns, s.conns)
	s.mu.Unlock()

	for _, conn := range conns {
		if !conn.enqueue(raw) {
			s.logger.Debug("broadcast skipped peer", "remote_addr", conn.RemoteAddr())
		}
	}
	stateBroadcastTotal.Inc()
}

// Close разрывает все соединения. Вызывается при остановке устройства.
func (s *Session) Close() {
	s.mu.Lock()
	conns := make([]*Conn, len(s.conns))
	copy(conns, s.conns)
	s.mu.Unlock()

	for _, conn := range conns {
		conn.close()
	}
}

func (s *Session) add(conn *Conn) {
	s.mu.Lock()
	s.conns = append(s.conns, conn)
	s.mu.Unlock()
	peerConnections.Inc()
}

func (s *Session) remove(conn *Conn) {
	s.mu.Lock()
	for i, c := range s.conns {
		if c == conn {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			peerConnections.Dec()
			break
		}
	}
	if s.outbound == conn {
		s.outbound = nil
	}
	s.mu.Unlock()
}

func (s *Session) emit(ev Event) {
	s.events <- ev
}

// readPump читает входящие сообщения до разрыва соединения.
// Каждый полученный документ уходит событием EventData; после разрыва
// соединение убирается из набора и уходит EventClosed.
func (s *Session) readPump(conn *Conn) {
	defer func() {
		conn.close()
		s.remove(conn)
		s.emit(Event{Kind: EventClosed, Conn: conn, Outbound: conn.outbound})
		s.logger.Info("connection closed", "remote_addr", conn.RemoteAddr(), "peers", s.Peers())
	}()

	for {
		_, raw, err := conn.ws.ReadMessage()
		if err != nil {
			return
		}

		var msg api.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.logger.Warn("malformed message", "remote_addr", conn.RemoteAddr(), "error", err)
			continue
		}
		if msg.Type != api.MessageTypeState {
			s.logger.Warn("unknown message type", "type", msg.Type)
			continue
		}

		var doc models.Document
		if err := json.Unmarshal(msg.State, &doc); err != nil {
			s.logger.Warn("malformed document", "remote_addr", conn.RemoteAddr(), "error", err)
			continue
		}

		stateReceivedTotal.Inc()
		s.emit(Event{Kind: EventData, Conn: conn, State: &doc, Outbound: conn.outbound})
	}
}

// writePump пишет сообщения из очереди соединения до ее закрытия.
func (s *Session) writePump(conn *Conn) {
	defer conn.ws.Close()

	for msg := range conn.send {
		if err := conn.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}

	// Очередь закрыта со стороны устройства — вежливо прощаемся
	_ = conn.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// encodeState упаковывает документ в конверт сообщения
func encodeState(doc *models.Document) ([]byte, error) {
	state, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	raw, err := json.Marshal(api.Message{Type: api.MessageTypeState, State: state})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return raw, nil
}
