package adapters

import (
	"context"
	"exrates/internal/domain"
)

// SourceClient downloads a raw upstream payload.
type SourceClient interface {
	Fetch(ctx context.Context, sourceURL string) ([]byte, error)
}

type PayloadCache interface {
	Get(url string) ([]byte, bool)
	Set(url string, payload []byte)
}

// RateArchive persists dated rate records and the coverage watermark between process restarts.
// Load returns the current marker as watermark when nothing was saved yet.
type RateArchive interface {
	Save(ctx context.Context, provider domain.ProviderType, records []domain.RateRecord, through domain.Date) error
	Load(ctx context.Context, provider domain.ProviderType) ([]domain.RateRecord, domain.Date, error)
}
