package peer

import "github.com/iudanet/cashbook/internal/models"

// EventKind представляет вид события жизненного цикла соединения.
type EventKind int

// События жизненного цикла соединения
const (
	// EventOpened соединение установлено и готово к обмену
	EventOpened EventKind = iota + 1
	// EventData от удаленного устройства пришел полный документ
	EventData
	// EventClosed соединение разорвано и убрано из активного набора
	EventClosed
	// EventErrored попытка соединения или само соединение завершилось ошибкой
	EventErrored
)

// String возвращает читаемое имя вида события
func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventData:
		return "data"
	case EventClosed:
		return "closed"
	case EventErrored:
		return "errored"
	}
	return "unknown"
}

// Event представляет одно событие сессии. Все события доставляются через
// единственный упорядоченный канал в цикл обработки контроллера репликации —
// это сериализует все переходы состояния без блокировок.
type Event struct {
	State    *models.Document // State заполнено только для EventData
	Conn     *Conn            // Conn соединение-источник (nil для EventErrored без соединения)
	Reason   string           // Reason заполнено только для EventErrored
	Kind     EventKind        // Kind вид события
	Outbound bool             // Outbound событие исходящего соединения (связь зрителя с редактором)
}
