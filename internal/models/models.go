package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod представляет способ оплаты записи в кассовой книге.
type PaymentMethod string

// Допустимые способы оплаты
const (
	MethodCash   PaymentMethod = "CASH"   // MethodCash наличные
	MethodCard   PaymentMethod = "CARD"   // MethodCard банковская карта
	MethodPaypal PaymentMethod = "PAYPAL" // MethodPaypal платеж через PayPal
)

// Valid проверяет, что способ оплаты является одним из допустимых значений.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodPaypal:
		return true
	}
	return false
}

// OutPartyEntry представляет запись сторонней выручки (out party).
// ID назначается при создании и не меняется. Index — позиция на момент
// создания (1-based); после правок может стать неактуальным, это допустимо.
type OutPartyEntry struct {
	ID     string          `json:"id"`     // ID уникальный идентификатор записи (UUID)
	Index  int             `json:"index"`  // Index порядковый номер на момент создания
	Method PaymentMethod   `json:"method"` // Method способ оплаты
	Amount decimal.Decimal `json:"amount"` // Amount сумма (ожидается >= 0, не принуждается)
}

// MainEntry представляет запись основной секции кассовой книги.
type MainEntry struct {
	ID          string          `json:"id"`          // ID уникальный идентификатор записи (UUID)
	RoomNo      string          `json:"roomNo"`      // RoomNo номер комнаты
	Description string          `json:"description"` // Description произвольное описание
	Method      PaymentMethod   `json:"method"`      // Method способ оплаты
	CashIn      decimal.Decimal `json:"cashIn"`      // CashIn приход
	CashOut     decimal.Decimal `json:"cashOut"`     // CashOut расход
}

// CashBook представляет открытую кассовую книгу за текущий день.
type CashBook struct {
	Date            string          `json:"date"`            // Date метка даты (строка, семантически не разбирается)
	OutPartyEntries []OutPartyEntry `json:"outPartyEntries"` // OutPartyEntries записи сторонней выручки
	MainEntries     []MainEntry     `json:"mainEntries"`     // MainEntries записи основной секции
	OpeningBalance  decimal.Decimal `json:"openingBalance"`  // OpeningBalance входящий остаток
}

// Archive представляет замороженный снимок завершенного дня.
// Архив неизменяем после создания и добавляется в начало истории.
type Archive struct {
	Date         string          `json:"date"`         // Date метка даты завершенного дня
	Data         CashBook        `json:"data"`         // Data копия кассовой книги на конец дня
	FinalBalance decimal.Decimal `json:"finalBalance"` // FinalBalance итоговый баланс на момент закрытия
}

// Rates представляет курсы валют, округленные вверх до целых единиц.
type Rates struct {
	USD  int64 `json:"usd"`  // USD курс доллара
	Euro int64 `json:"euro"` // Euro курс евро
}

// Document представляет полное реплицируемое состояние одного устройства.
// Документ — единица репликации: при каждой синхронизации передается целиком.
// История упорядочена от новых дней к старым и только растет.
type Document struct {
	CurrentData CashBook  `json:"currentData"` // CurrentData открытая книга за "сегодня"
	History     []Archive `json:"history"`     // History архивы завершенных дней, новые в начале
	Rates       Rates     `json:"rates"`       // Rates текущие курсы валют
}

// CurrentDateLabel возвращает метку текущей даты для новой кассовой книги.
// Метка — непрозрачная строка, нигде не разбирается обратно.
func CurrentDateLabel() string {
	return time.Now().Format("02/01/2006")
}

// NewCashBook создает пустую кассовую книгу с заданной датой и входящим остатком.
func NewCashBook(date string, openingBalance decimal.Decimal) CashBook {
	return CashBook{
		Date:            date,
		OutPartyEntries: []OutPartyEntry{},
		MainEntries:     []MainEntry{},
		OpeningBalance:  openingBalance,
	}
}

// NewDocument создает пустой документ для первого запуска устройства:
// сегодняшняя дата, пустые списки записей, нулевой остаток и нулевые курсы.
func NewDocument(date string) *Document {
	return &Document{
		CurrentData: NewCashBook(date, decimal.Zero),
		History:     []Archive{},
	}
}

// Clone создает глубокую копию кассовой книги
func (b CashBook) Clone() CashBook {
	out := make([]OutPartyEntry, len(b.OutPartyEntries))
	copy(out, b.OutPartyEntries)

	main := make([]MainEntry, len(b.MainEntries))
	copy(main, b.MainEntries)

	return CashBook{
		Date:            b.Date,
		OutPartyEntries: out,
		MainEntries:     main,
		OpeningBalance:  b.OpeningBalance,
	}
}

// Clone создает глубокую копию документа
func (d *Document) Clone() *Document {
	history := make([]Archive, len(d.History))
	for i, a := range d.History {
		history[i] = Archive{
			Date:         a.Date,
			Data:         a.Data.Clone(),
			FinalBalance: a.FinalBalance,
		}
	}

	return &Document{
		CurrentData: d.CurrentData.Clone(),
		History:     history,
		Rates:       d.Rates,
	}
}
