package provider

import (
	"context"
	"exrates/internal/adapters"
	"exrates/internal/domain"
	"exrates/internal/loader"
	"exrates/internal/metrics"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const warmTimeout = 30 * time.Second

// SourceURLs locates the upstream feed of every loader-backed provider.
type SourceURLs struct {
	ECBCurrent    string
	ECBHistoric90 string
	ECBHistoric   string
	IMF           string
}

// NewFactory returns the Factory that builds every provider type.
// archive may be nil.
func NewFactory(urls SourceURLs, client adapters.SourceClient, archive adapters.RateArchive, m *metrics.Metrics) Factory {
	return func(ctx context.Context, kind domain.ProviderType) (RateProvider, error) {
		var p *HistoricProvider
		switch kind {
		case domain.ProviderIdentity:
			return NewIdentityProvider(), nil
		case domain.ProviderECB:
			p = NewHistoricProvider(kind, "EUR", loader.NewCurrentLoader(urls.ECBCurrent, client), nil, m)
		case domain.ProviderECBHistoric90:
			p = NewHistoricProvider(kind, "EUR", loader.NewHistoric90Loader(urls.ECBHistoric90, client), archive, m)
		case domain.ProviderECBHistoric:
			p = NewHistoricProvider(kind, "EUR", loader.NewFullHistoricLoader(urls.ECBHistoric, client), archive, m)
		case domain.ProviderIMF:
			p = NewHistoricProvider(kind, loader.IMFPivot, loader.NewIMFLoader(urls.IMF, client), archive, m)
		default:
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProviderType, kind)
		}

		warmCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), warmTimeout)
		defer cancel()
		if err := p.Warm(warmCtx); err != nil {
			logrus.WithError(err).WithField("provider", kind).Warn("Starting provider without archived rates")
		}
		logrus.WithField("provider", kind).Info("Provider initialized")
		return p, nil
	}
}
