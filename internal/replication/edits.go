package replication

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iudanet/cashbook/internal/models"
	"github.com/iudanet/cashbook/internal/totals"
)

// Mutator представляет одну локальную правку документа.
// Правка получает рабочую копию текущего документа и возвращает следующий.
type Mutator func(doc *models.Document) *models.Document

// AddOutPartyEntry возвращает правку, добавляющую новую запись out-party:
// наличные, нулевая сумма, порядковый номер на момент создания.
func AddOutPartyEntry() Mutator {
	return func(doc *models.Document) *models.Document {
		entries := doc.CurrentData.OutPartyEntries
		doc.CurrentData.OutPartyEntries = append(entries, models.OutPartyEntry{
			ID:     uuid.NewString(),
			Index:  len(entries) + 1,
			Method: models.MethodCash,
			Amount: decimal.Zero,
		})
		return doc
	}
}

// UpdateOutPartyEntry возвращает правку суммы и способа оплаты записи out-party.
// Неизвестный идентификатор оставляет документ без изменений.
func UpdateOutPartyEntry(id string, amount decimal.Decimal, method models.PaymentMethod) Mutator {
	return func(doc *models.Document) *models.Document {
		for i, e := range doc.CurrentData.OutPartyEntries {
			if e.ID == id {
				doc.CurrentData.OutPartyEntries[i].Amount = amount
				doc.CurrentData.OutPartyEntries[i].Method = method
				break
			}
		}
		return doc
	}
}

// AddMainEntry возвращает правку, добавляющую пустую запись основной секции.
func AddMainEntry() Mutator {
	return func(doc *models.Document) *models.Document {
		doc.CurrentData.MainEntries = append(doc.CurrentData.MainEntries, models.MainEntry{
			ID:      uuid.NewString(),
			Method:  models.MethodCash,
			CashIn:  decimal.Zero,
			CashOut: decimal.Zero,
		})
		return doc
	}
}

// MainEntryUpdate представляет частичное обновление записи основной секции.
// Nil-поля не меняются.
type MainEntryUpdate struct {
	RoomNo      *string
	Description *string
	Method      *models.PaymentMethod
	CashIn      *decimal.Decimal
	CashOut     *decimal.Decimal
}

// UpdateMainEntry возвращает правку записи основной секции.
// Неизвестный идентификатор оставляет документ без изменений.
func UpdateMainEntry(id string, upd MainEntryUpdate) Mutator {
	return func(doc *models.Document) *models.Document {
		for i := range doc.CurrentData.MainEntries {
			e := &doc.CurrentData.MainEntries[i]
			if e.ID != id {
				continue
			}
			if upd.RoomNo != nil {
				e.RoomNo = *upd.RoomNo
			}
			if upd.Description != nil {
				e.Description = *upd.Description
			}
			if upd.Method != nil {
				e.Method = *upd.Method
			}
			if upd.CashIn != nil {
				e.CashIn = *upd.CashIn
			}
			if upd.CashOut != nil {
				e.CashOut = *upd.CashOut
			}
			break
		}
		return doc
	}
}

// SetRates возвращает правку курсов валют.
func SetRates(rates models.Rates) Mutator {
	return func(doc *models.Document) *models.Document {
		doc.Rates = rates
		return doc
	}
}

// DayEnd возвращает привилегированную правку закрытия дня: итоговый баланс
// текущей книги считается и замораживается в архиве, архив добавляется в
// начало истории, а новая книга открывается с этим балансом как входящим
// остатком. С точки зрения репликации переход атомарен — ровно один новый
// документ и ровно одна рассылка.
func DayEnd(nextDate string) Mutator {
	return func(doc *models.Document) *models.Document {
		t := totals.Compute(doc.CurrentData)

		archive := models.Archive{
			Date:         doc.CurrentData.Date,
			Data:         doc.CurrentData.Clone(),
			FinalBalance: t.FinalBalance,
		}
		doc.History = append([]models.Archive{archive}, doc.History...)
		doc.CurrentData = models.NewCashBook(nextDate, t.FinalBalance)

		return doc
	}
}
