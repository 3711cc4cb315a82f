// Package pairing управляет состоянием сопряжения устройства-просмотра
// с устройством-редактором.
package pairing

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/cashbook/internal/storage"
)

// DefaultReconnectDelay задержка перед единственной попыткой
// автоматического переподключения при старте.
const DefaultReconnectDelay = 2 * time.Second

// State состояние сопряжения.
type State int

const (
	StateUnpaired State = iota + 1
	StateConnecting
	StatePaired
)

func (s State) String() string {
	switch s {
	case StateUnpaired:
		return "unpaired"
	case StateConnecting:
		return "connecting"
	case StatePaired:
		return "paired"
	default:
		return "unknown"
	}
}

// Connector — исходящее соединение с редактором.
//
//go:generate moq -out connector_mock.go . Connector
type Connector interface {
	Connect(remoteID string)
	Disconnect()
}

// Manager — машина состояний сопряжения. Реализует
// replication.ConnectionObserver: события соединения переводят
// состояние между Connecting, Paired и Unpaired.
type Manager struct {
	conn   Connector
	store  storage.PairingStorage
	logger *slog.Logger
	delay  time.Duration

	mu           sync.RWMutex
	state        State
	onConnecting func()
}

func NewManager(conn Connector, store storage.PairingStorage, delay time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		conn:   conn,
		store:  store,
		logger: logger,
		delay:  delay,
		state:  StateUnpaired,
	}
}

// State возвращает текущее состояние сопряжения.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// OnConnecting задает уведомление о начале попытки подключения
// (индикатор статуса устройства).
func (m *Manager) OnConnecting(fn func()) {
	m.mu.Lock()
	m.onConnecting = fn
	m.mu.Unlock()
}

// Pair начинает сопряжение с редактором. Пустой идентификатор
// игнорируется. Перед новым подключением всегда разрывается
// существующее исходящее соединение.
func (m *Manager) Pair(ctx context.Context, editorID string) {
	editorID = strings.TrimSpace(editorID)
	if editorID == "" {
		return
	}

	m.setState(StateConnecting)
	m.mu.RLock()
	onConnecting := m.onConnecting
	m.mu.RUnlock()
	if onConnecting != nil {
		onConnecting()
	}

	m.conn.Disconnect()

	if err := m.store.SaveEditorID(ctx, editorID); err != nil {
		m.logger.Warn("failed to persist editor id", "error", err)
	}

	m.logger.Info("pairing with editor", "editor_id", editorID)
	m.conn.Connect(editorID)
}

// AutoReconnect выполняет ровно одну попытку переподключения к
// сохраненному редактору после фиксированной задержки. Если
// идентификатор редактора не сохранен, попытка не делается.
func (m *Manager) AutoReconnect(ctx context.Context) {
	editorID, err := m.store.GetEditorID(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrEditorIDNotFound) {
			m.logger.Warn("failed to load editor id", "error", err)
		}
		return
	}

	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return
	}

	m.logger.Info("auto-reconnecting to editor", "editor_id", editorID)
	m.Pair(ctx, editorID)
}

// ConnectionOpened вызывается при установке соединения.
func (m *Manager) ConnectionOpened() {
	m.setState(StatePaired)
}

// ConnectionClosed вызывается при разрыве соединения.
func (m *Manager) ConnectionClosed() {
	m.setState(StateUnpaired)
}

// ConnectionFailed вызывается при неудачной попытке подключения.
func (m *Manager) ConnectionFailed(reason string) {
	m.logger.Warn("pairing connection failed", "reason", reason)
	m.setState(StateUnpaired)
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}
