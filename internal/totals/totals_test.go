package totals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cashbook/internal/models"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestCompute_EmptyBook(t *testing.T) {
	book := models.NewCashBook("01/01/2025", decimal.Zero)

	got := Compute(book)

	assert.True(t, got.MainCashIn.IsZero())
	assert.True(t, got.MainCashOut.IsZero())
	assert.True(t, got.FinalBalance.IsZero())
}

func TestCompute_OpeningBalanceOnly(t *testing.T) {
	book := models.NewCashBook("01/01/2025", d(2500))

	got := Compute(book)

	// Входящий остаток сам по себе является приходом
	assert.True(t, got.MainCashIn.Equal(d(2500)))
	assert.True(t, got.FinalBalance.Equal(d(2500)))
}

// Сценарий из жизни: одна out-party запись наличными на 500
// и одна запись основной секции с приходом 1000 при нулевом остатке.
func TestCompute_CashScenario(t *testing.T) {
	book := models.NewCashBook("01/01/2025", decimal.Zero)
	book.OutPartyEntries = append(book.OutPartyEntries, models.OutPartyEntry{
		ID:     "op-1",
		Index:  1,
		Method: models.MethodCash,
		Amount: d(500),
	})
	book.MainEntries = append(book.MainEntries, models.MainEntry{
		ID:     "m-1",
		Method: models.MethodCash,
		CashIn: d(1000),
	})

	got := Compute(book)

	assert.True(t, got.OutPartyCash.Equal(d(500)))
	assert.True(t, got.MainCashIn.Equal(d(1500)))
	assert.True(t, got.MainCashOut.IsZero())
	assert.True(t, got.FinalBalance.Equal(d(1500)))
}

func TestCompute_CardAndPaypalPassThrough(t *testing.T) {
	// Безналичные платежи учитываются и в приходе, и в расходе,
	// поэтому итоговый наличный баланс от них не меняется.
	book := models.NewCashBook("01/01/2025", d(100))
	book.OutPartyEntries = append(book.OutPartyEntries,
		models.OutPartyEntry{ID: "op-1", Index: 1, Method: models.MethodCard, Amount: d(200)},
		models.OutPartyEntry{ID: "op-2", Index: 2, Method: models.MethodPaypal, Amount: d(300)},
	)
	book.MainEntries = append(book.MainEntries,
		models.MainEntry{ID: "m-1", Method: models.MethodCard, CashIn: d(400)},
		models.MainEntry{ID: "m-2", Method: models.MethodPaypal, CashIn: d(500)},
		models.MainEntry{ID: "m-3", Method: models.MethodCash, CashIn: d(50), CashOut: d(25)},
	)

	got := Compute(book)

	assert.True(t, got.TotalCard.Equal(d(600)), "totalCard = 200 out-party + 400 main")
	assert.True(t, got.TotalPaypal.Equal(d(800)), "totalPaypal = 300 out-party + 500 main")

	// mainCashIn = (400+500+50) + (200+300) + 100 opening = 1550
	assert.True(t, got.MainCashIn.Equal(d(1550)))
	// mainCashOut = 25 + 600 + 800 = 1425
	assert.True(t, got.MainCashOut.Equal(d(1425)))
	assert.True(t, got.FinalBalance.Equal(d(125)))
}

func TestCompute_Invariant(t *testing.T) {
	book := models.NewCashBook("01/01/2025", d(777))
	book.OutPartyEntries = append(book.OutPartyEntries,
		models.OutPartyEntry{ID: "op-1", Index: 1, Method: models.MethodCash, Amount: d(13)},
		models.OutPartyEntry{ID: "op-2", Index: 2, Method: models.MethodCard, Amount: d(14)},
	)
	book.MainEntries = append(book.MainEntries,
		models.MainEntry{ID: "m-1", Method: models.MethodPaypal, CashIn: d(15), CashOut: d(16)},
		models.MainEntry{ID: "m-2", Method: models.MethodCash, CashIn: d(17), CashOut: d(18)},
	)

	got := Compute(book)

	// Инвариант: mainCashIn - mainCashOut == finalBalance
	assert.True(t, got.MainCashIn.Sub(got.MainCashOut).Equal(got.FinalBalance))
}

func TestCompute_Pure(t *testing.T) {
	book := models.NewCashBook("01/01/2025", d(42))
	book.OutPartyEntries = append(book.OutPartyEntries,
		models.OutPartyEntry{ID: "op-1", Index: 1, Method: models.MethodCash, Amount: d(10)},
	)

	first := Compute(book)
	second := Compute(book)

	// Одинаковый вход — одинаковый выход, книга не изменилась
	require.True(t, first.FinalBalance.Equal(second.FinalBalance))
	require.True(t, first.MainCashIn.Equal(second.MainCashIn))
	require.Len(t, book.OutPartyEntries, 1)
	assert.True(t, book.OutPartyEntries[0].Amount.Equal(d(10)))
}
