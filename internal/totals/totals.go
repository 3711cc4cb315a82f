// Package totals содержит чистое вычисление итогов кассовой книги.
// Используется при закрытии дня и отдается потребителю как есть;
// никакого состояния не хранит.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/iudanet/cashbook/internal/models"
)

// Totals представляет итоговые суммы открытой кассовой книги.
// Инвариант: MainCashIn - MainCashOut == FinalBalance.
type Totals struct {
	OutPartyCash   decimal.Decimal `json:"outPartyCash"`   // OutPartyCash сумма out-party записей наличными
	OutPartyCard   decimal.Decimal `json:"outPartyCard"`   // OutPartyCard сумма out-party записей картой
	OutPartyPaypal decimal.Decimal `json:"outPartyPaypal"` // OutPartyPaypal сумма out-party записей через PayPal
	TotalCard      decimal.Decimal `json:"totalCard"`      // TotalCard карта: out-party + приход основной секции
	TotalPaypal    decimal.Decimal `json:"totalPaypal"`    // TotalPaypal PayPal: out-party + приход основной секции
	MainCashIn     decimal.Decimal `json:"mainCashIn"`     // MainCashIn весь приход, включая входящий остаток
	MainCashOut    decimal.Decimal `json:"mainCashOut"`    // MainCashOut весь расход, включая безналичный транзит
	FinalBalance   decimal.Decimal `json:"finalBalance"`   // FinalBalance итоговый баланс
}

// Compute вычисляет итоги кассовой книги.
// Безналичные суммы (карта, PayPal) проходят транзитом: учитываются и в
// приходе, и в расходе, поэтому не влияют на итоговый наличный баланс.
func Compute(book models.CashBook) Totals {
	outPartyCash := decimal.Zero
	outPartyCard := decimal.Zero
	outPartyPaypal := decimal.Zero

	for _, e := range book.OutPartyEntries {
		switch e.Method {
		case models.MethodCash:
			outPartyCash = outPartyCash.Add(e.Amount)
		case models.MethodCard:
			outPartyCard = outPartyCard.Add(e.Amount)
		case models.MethodPaypal:
			outPartyPaypal = outPartyPaypal.Add(e.Amount)
		}
	}

	mainCard := decimal.Zero
	mainPaypal := decimal.Zero
	mainIn := decimal.Zero
	mainOut := decimal.Zero

	for _, e := range book.MainEntries {
		mainIn = mainIn.Add(e.CashIn)
		mainOut = mainOut.Add(e.CashOut)

		switch e.Method {
		case models.MethodCard:
			mainCard = mainCard.Add(e.CashIn)
		case models.MethodPaypal:
			mainPaypal = mainPaypal.Add(e.CashIn)
		}
	}

	totalCard := outPartyCard.Add(mainCard)
	totalPaypal := outPartyPaypal.Add(mainPaypal)
	outPartyTotal := outPartyCash.Add(outPartyCard).Add(outPartyPaypal)

	mainCashIn := mainIn.Add(outPartyTotal).Add(book.OpeningBalance)
	mainCashOut := mainOut.Add(totalCard).Add(totalPaypal)

	return Totals{
		OutPartyCash:   outPartyCash,
		OutPartyCard:   outPartyCard,
		OutPartyPaypal: outPartyPaypal,
		TotalCard:      totalCard,
		TotalPaypal:    totalPaypal,
		MainCashIn:     mainCashIn,
		MainCashOut:    mainCashOut,
		FinalBalance:   mainCashIn.Sub(mainCashOut),
	}
}
