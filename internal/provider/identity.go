package provider

import (
	"context"
	"exrates/internal/domain"
	"fmt"
)

// IdentityProvider only converts a currency into itself.
type IdentityProvider struct{}

func (IdentityProvider) Type() domain.ProviderType { return domain.ProviderIdentity }

func (IdentityProvider) GetRate(_ context.Context, base, term string, date domain.Date) (domain.ExchangeRate, error) {
	base = normalizeCode(base)
	term = normalizeCode(term)
	if base != term {
		return domain.ExchangeRate{}, fmt.Errorf("%w: %s/%s", domain.ErrCurrencyMismatch, base, term)
	}
	return unitRate(domain.ProviderIdentity, base, date), nil
}

func NewIdentityProvider() IdentityProvider { return IdentityProvider{} }
