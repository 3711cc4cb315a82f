package replication

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/cashbook/internal/models"
	"github.com/iudanet/cashbook/internal/peer"
	"github.com/iudanet/cashbook/internal/storage"
)

//go:generate moq -out peersession_mock.go . PeerSession

// PeerSession определяет часть peer.Session, нужную контроллеру репликации
type PeerSession interface {
	// Events returns the single ordered event channel of the session
	Events() <-chan peer.Event

	// Send pushes the document to one connection (best-effort)
	Send(conn *peer.Conn, doc *models.Document)

	// Broadcast pushes the document to every open connection
	Broadcast(doc *models.Document)

	// Peers returns the number of live connections
	Peers() int
}

// ConnectionObserver получает уведомления о жизненном цикле соединений.
// Используется pairing state machine зрителя; у редактора наблюдателя нет.
type ConnectionObserver interface {
	ConnectionOpened()
	ConnectionClosed()
	ConnectionFailed(reason string)
}

// editRequest локальная правка, ожидающая своей очереди в цикле обработки
type editRequest struct {
	mutate Mutator
	reply  chan *models.Document
}

// Controller владеет авторитетным документом устройства и является
// единственным местом, где решается, допустима ли локальная правка.
//
// Все переходы состояния — события сессии и локальные правки — обрабатываются
// строго по одному в цикле Run, поэтому документ не нуждается в блокировках
// на запись. Репликация работает по принципу last-writer-wins: полученный
// документ целиком замещает локальный, без сравнения версий и без слияния.
// Зритель поэтому всегда является точным зеркалом последней рассылки
// редактора; переупорядочивание доставки между разными соединениями не
// отслеживается — это осознанное ограничение протокола, не ошибка.
type Controller struct {
	role    Role
	session PeerSession
	store   storage.StateStorage
	logger  *slog.Logger

	mu       sync.RWMutex
	doc      *models.Document
	status   string
	observer ConnectionObserver
	onChange func(*models.Document)

	edits chan editRequest
}

// New создает контроллер. Документ doc становится начальным состоянием
// (обычно это результат LoadState при старте устройства).
func New(role Role, doc *models.Document, session PeerSession, store storage.StateStorage, logger *slog.Logger) *Controller {
	return &Controller{
		role:    role,
		session: session,
		store:   store,
		logger:  logger,
		doc:     doc,
		status:  "Ready",
		edits:   make(chan editRequest),
	}
}

// Observe задает наблюдателя событий соединения.
func (c *Controller) Observe(obs ConnectionObserver) {
	c.mu.Lock()
	c.observer = obs
	c.mu.Unlock()
}

// OnChange задает уведомление о каждом новом документе (для потребителя
// состояния). Наружу всегда уходит копия.
func (c *Controller) OnChange(fn func(*models.Document)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// MarkConnecting выставляет статус на время установки исходящего
// соединения. Вызывается pairing state machine до Connect; дальнейшие
// переходы статуса делают события сессии.
func (c *Controller) MarkConnecting() {
	c.setStatus("Connecting...")
}

// Role возвращает роль устройства
func (c *Controller) Role() Role {
	return c.role
}

// Current возвращает копию текущего документа.
// Живой документ наружу не отдается никогда.
func (c *Controller) Current() *models.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc.Clone()
}

// Status возвращает строку состояния подключения для индикатора
func (c *Controller) Status() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Run обрабатывает события сессии и локальные правки строго по одному,
// пока контекст не завершится. Запускается один раз при старте устройства.
func (c *Controller) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-c.session.Events():
			c.handleEvent(ctx, ev)
		case req := <-c.edits:
			req.reply <- c.applyEdit(ctx, req.mutate)
		}
	}
}

// ApplyLocalEdit применяет локальную правку: next = mutate(current),
// сохраняет, рассылает всем устройствам и возвращает новый документ.
// На устройстве-зрителе правка молча игнорируется и возвращается текущий
// документ — это точка принуждения семантики единственного писателя.
func (c *Controller) ApplyLocalEdit(ctx context.Context, mutate Mutator) *models.Document {
	if !c.role.IsEditor() {
		c.logger.Debug("local edit ignored on viewer")
		return c.Current()
	}

	req := editRequest{mutate: mutate, reply: make(chan *models.Document, 1)}

	select {
	case c.edits <- req:
	case <-ctx.Done():
		return c.Current()
	}

	select {
	case doc := <-req.reply:
		return doc
	case <-ctx.Done():
		return c.Current()
	}
}

// DayEnd выполняет переход закрытия дня
func (c *Controller) DayEnd(ctx context.Context) *models.Document {
	return c.ApplyLocalEdit(ctx, DayEnd(models.CurrentDateLabel()))
}

// SetRates обновляет курсы валют и рассылает документ.
// Вызывается редактором один раз при старте после опроса источника курсов.
func (c *Controller) SetRates(ctx context.Context, rates models.Rates) *models.Document {
	return c.ApplyLocalEdit(ctx, SetRates(rates))
}

// applyEdit выполняется только внутри цикла Run
func (c *Controller) applyEdit(ctx context.Context, mutate Mutator) *models.Document {
	next := mutate(c.Current())

	// Write-through: каждый новый документ сразу на диске.
	// Ошибка сохранения не останавливает работу — рассылка важнее.
	if err := c.store.SaveState(ctx, next); err != nil {
		c.logger.Warn("failed to persist document", "error", err)
	}

	c.session.Broadcast(next)
	c.swap(next)

	return next.Clone()
}

// handleEvent выполняется только внутри цикла Run
func (c *Controller) handleEvent(ctx context.Context, ev peer.Event) {
	switch ev.Kind {
	case peer.EventOpened:
		// Новое устройство сразу получает текущий документ,
		// чтобы зритель не оставался с пустым состоянием
		if c.role.IsEditor() {
			c.session.Send(ev.Conn, c.Current())
		}
		c.setStatus(fmt.Sprintf("Connected (%d)", c.session.Peers()))
		// Наблюдатель следит за связью с редактором: входящие
		// соединения сопряжения не меняют
		if obs := c.currentObserver(); obs != nil && ev.Outbound {
			obs.ConnectionOpened()
		}

	case peer.EventData:
		// Last-writer-wins: полная замена без сравнения и без слияния
		c.logger.Info("received document", "peers", c.session.Peers())
		if err := c.store.SaveState(ctx, ev.State); err != nil {
			c.logger.Warn("failed to persist received document", "error", err)
		}
		c.swap(ev.State)

	case peer.EventClosed:
		if n := c.session.Peers(); n > 0 {
			c.setStatus(fmt.Sprintf("Connected (%d)", n))
		} else {
			c.setStatus("Ready")
		}
		if obs := c.currentObserver(); obs != nil && ev.Outbound {
			obs.ConnectionClosed()
		}

	case peer.EventErrored:
		c.setStatus("Error: " + ev.Reason)
		c.logger.Warn("connection error", "reason", ev.Reason)
		if obs := c.currentObserver(); obs != nil && ev.Outbound {
			obs.ConnectionFailed(ev.Reason)
		}
	}
}

func (c *Controller) currentObserver() ConnectionObserver {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.observer
}

func (c *Controller) swap(doc *models.Document) {
	c.mu.Lock()
	c.doc = doc
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(doc.Clone())
	}
}

func (c *Controller) setStatus(status string) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}
