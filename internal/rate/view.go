package rate

import (
	"exrates/internal/domain"

	"github.com/shopspring/decimal"
)

type View struct {
	Provider domain.ProviderType
	Base     string
	Term     string
	Date     domain.Date
	Factor   decimal.Decimal
	Derived  bool
}

type ConversionView struct {
	Rate      View
	Amount    decimal.Decimal
	Converted decimal.Decimal
}

type ProviderView struct {
	Type        domain.ProviderType
	Description string
}

func toView(r domain.ExchangeRate) View {
	return View{
		Provider: r.Provider,
		Base:     r.Base,
		Term:     r.Term,
		Date:     r.Date,
		Factor:   r.Factor,
		Derived:  r.Derived,
	}
}
