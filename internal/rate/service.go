package rate

import (
	"context"
	"exrates/internal/domain"
	"exrates/internal/metrics"
	"exrates/internal/provider"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProviderSelector hands out the provider registered for a token.
type ProviderSelector interface {
	Select(ctx context.Context, token string) (provider.RateProvider, error)
}

type Service struct {
	providers ProviderSelector
	metrics   *metrics.Metrics
}

func (s *Service) GetRate(ctx context.Context, token, base, term string, date domain.Date) (View, error) {
	p, err := s.providers.Select(ctx, token)
	if err != nil {
		return View{}, err
	}
	r, err := p.GetRate(ctx, base, term, date)
	if err != nil {
		return View{}, err
	}
	return toView(r), nil
}

// Convert multiplies amount by the rate. With a scale the converted amount is rounded
// half away from zero; the factor itself is never rounded.
func (s *Service) Convert(ctx context.Context, token string, amount decimal.Decimal, from, to string, date domain.Date, scale *int32) (ConversionView, error) {
	s.metrics.IncConversions()

	rate, err := s.GetRate(ctx, token, from, to, date)
	if err != nil {
		return ConversionView{}, fmt.Errorf("failed to convert %s %s to %s: %w", amount, from, to, err)
	}

	converted := amount.Mul(rate.Factor)
	if scale != nil {
		converted = converted.Round(*scale)
	}
	return ConversionView{Rate: rate, Amount: amount, Converted: converted}, nil
}

func (s *Service) Providers() []ProviderView {
	types := domain.AllProviderTypes()
	views := make([]ProviderView, 0, len(types))
	for _, t := range types {
		views = append(views, ProviderView{Type: t, Description: t.Description()})
	}
	return views
}

func NewService(providers ProviderSelector, m *metrics.Metrics) *Service {
	return &Service{providers: providers, metrics: m}
}
