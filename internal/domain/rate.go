package domain

import (
	"github.com/shopspring/decimal"
)

type CurrencyPair struct {
	Base string
	Term string
}

func (p CurrencyPair) Reversed() CurrencyPair {
	return CurrencyPair{Base: p.Term, Term: p.Base}
}

func (p CurrencyPair) String() string { return p.Base + "/" + p.Term }

// RateRecord says that one unit of Base buys Factor units of Term on Date.
type RateRecord struct {
	Base   string
	Term   string
	Date   Date
	Factor decimal.Decimal
}

func (r RateRecord) Pair() CurrencyPair { return CurrencyPair{Base: r.Base, Term: r.Term} }

// Valid reports whether the record may be stored.
func (r RateRecord) Valid() bool {
	return r.Base != "" && r.Term != "" && r.Base != r.Term && r.Factor.IsPositive()
}

// ExchangeRate is the answer to a rate query.
type ExchangeRate struct {
	Provider ProviderType
	Base     string
	Term     string
	// Date is the trading day the factor was resolved from.
	Date    Date
	Factor  decimal.Decimal
	Derived bool
}

type DateRange struct {
	From Date
	To   Date
}
