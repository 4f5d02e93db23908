package provider

import (
	"context"
	"exrates/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityProvider(t *testing.T) {
	p := NewIdentityProvider()
	require.Equal(t, domain.ProviderIdentity, p.Type())

	for _, date := range []domain.Date{domain.Current, friday, tomorrow} {
		rate, err := p.GetRate(context.Background(), "usd", "USD", date)
		require.NoError(t, err)
		require.True(t, rate.Factor.Equal(factorOne))
		require.Equal(t, "USD", rate.Base)
	}

	_, err := p.GetRate(context.Background(), "USD", "EUR", tomorrow)
	require.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}
