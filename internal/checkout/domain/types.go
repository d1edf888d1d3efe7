package domain

import "fmt"

// Money is an amount in minor units (cents).
type Money struct {
	Currency string
	Amount   int64
}

var currencySymbols = map[string]string{
	"":    "$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// String renders m the way the cart view shows prices, e.g. "$12.34".
// Currencies without a known symbol print as "CHF 3.00".
func (m Money) String() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	symbol, ok := currencySymbols[m.Currency]
	if !ok {
		symbol = m.Currency + " "
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, amount/100, amount%100)
}

type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}

func (q Quote) Empty() bool {
	return len(q.Lines) == 0
}
