package provider

import (
	"context"
	"exrates/internal/domain"
	"sync"
)

// Factory builds the provider for one type. It is called at most once per type.
type Factory func(ctx context.Context, kind domain.ProviderType) (RateProvider, error)

type slot struct {
	once     sync.Once
	provider RateProvider
	err      error
}

// Registry maps provider tokens to provider instances built lazily on first use.
type Registry struct {
	factory Factory
	slots   map[domain.ProviderType]*slot
}

// Select returns the provider for token. Unknown tokens fail with domain.ErrUnknownProviderType.
func (r *Registry) Select(ctx context.Context, token string) (RateProvider, error) {
	kind, err := domain.ParseProviderType(token)
	if err != nil {
		return nil, err
	}
	s := r.slots[kind]
	s.once.Do(func() {
		s.provider, s.err = r.factory(ctx, kind)
	})
	return s.provider, s.err
}

func NewRegistry(factory Factory) *Registry {
	slots := make(map[domain.ProviderType]*slot, len(domain.AllProviderTypes()))
	for _, kind := range domain.AllProviderTypes() {
		slots[kind] = &slot{}
	}
	return &Registry{factory: factory, slots: slots}
}
