package rate

import (
	"context"
	"exrates/internal/domain"
	"exrates/internal/provider"

	"github.com/stretchr/testify/mock"
)

type MockSelector struct{ mock.Mock }

func (m *MockSelector) Select(ctx context.Context, token string) (provider.RateProvider, error) {
	args := m.Called(ctx, token)
	p, _ := args.Get(0).(provider.RateProvider)
	return p, args.Error(1)
}

type MockProvider struct{ mock.Mock }

func (m *MockProvider) Type() domain.ProviderType {
	args := m.Called()
	t, _ := args.Get(0).(domain.ProviderType)
	return t
}

func (m *MockProvider) GetRate(ctx context.Context, base, term string, date domain.Date) (domain.ExchangeRate, error) {
	args := m.Called(ctx, base, term, date)
	r, _ := args.Get(0).(domain.ExchangeRate)
	return r, args.Error(1)
}

type MockRefreshingProvider struct {
	MockProvider
}

func (m *MockRefreshingProvider) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
