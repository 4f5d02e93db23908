package provider

import (
	"exrates/internal/domain"

	"github.com/shopspring/decimal"
)

// DivisionPrecision is the number of decimal places kept when a factor is divided.
const DivisionPrecision int32 = 16

var one = decimal.NewFromInt(1)

// ratio is an exact num/den factor. Division happens once, at the end of a derivation.
type ratio struct {
	num  decimal.Decimal
	den  decimal.Decimal
	date domain.Date
}

func (r ratio) value() decimal.Decimal {
	if r.den.Equal(one) {
		return r.num
	}
	return r.num.DivRound(r.den, DivisionPrecision)
}

// resolve derives base→term from the store: the direct record, the inverse of the
// reverse record, or the cross rate through the pivot. Derived factors are not stored.
func (p *HistoricProvider) resolve(pair domain.CurrencyPair, date domain.Date) (domain.ExchangeRate, bool) {
	if r, inverted, ok := p.leg(pair, date); ok {
		return p.exchangeRate(pair, r, inverted), true
	}
	if pair.Base == p.pivot || pair.Term == p.pivot {
		return domain.ExchangeRate{}, false
	}

	toPivot := domain.CurrencyPair{Base: pair.Base, Term: p.pivot}
	termToPivot := domain.CurrencyPair{Base: pair.Term, Term: p.pivot}

	bl, _, ok := p.leg(toPivot, date)
	if !ok {
		return domain.ExchangeRate{}, false
	}
	tl, _, ok := p.leg(termToPivot, date)
	if !ok {
		return domain.ExchangeRate{}, false
	}
	// Both legs must come from the same trading day. Dates only decrease, so this ends.
	for bl.date != tl.date {
		if bl.date.IsCurrent() || tl.date.IsCurrent() {
			return domain.ExchangeRate{}, false
		}
		at := bl.date
		if tl.date.Before(at) {
			at = tl.date
		}
		if bl, _, ok = p.leg(toPivot, at); !ok {
			return domain.ExchangeRate{}, false
		}
		if tl, _, ok = p.leg(termToPivot, at); !ok {
			return domain.ExchangeRate{}, false
		}
	}

	cross := ratio{
		num:  bl.num.Mul(tl.den),
		den:  bl.den.Mul(tl.num),
		date: bl.date,
	}
	return p.exchangeRate(pair, cross, true), true
}

// leg finds from→to on or before date, either stored directly or as the inverse of to→from.
// The more recent of the two wins; the direct record wins a tie.
func (p *HistoricProvider) leg(pair domain.CurrencyPair, date domain.Date) (ratio, bool, bool) {
	direct, hasDirect := p.store.NearestOnOrBefore(pair, date)
	reverse, hasReverse := p.store.NearestOnOrBefore(pair.Reversed(), date)

	switch {
	case hasDirect && (!hasReverse || direct.Date.Compare(reverse.Date) >= 0):
		return ratio{num: direct.Factor, den: one, date: direct.Date}, false, true
	case hasReverse:
		return ratio{num: one, den: reverse.Factor, date: reverse.Date}, true, true
	default:
		return ratio{}, false, false
	}
}

func (p *HistoricProvider) exchangeRate(pair domain.CurrencyPair, r ratio, derived bool) domain.ExchangeRate {
	return domain.ExchangeRate{
		Provider: p.kind,
		Base:     pair.Base,
		Term:     pair.Term,
		Date:     r.date,
		Factor:   r.value(),
		Derived:  derived,
	}
}
