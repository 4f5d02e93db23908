package loader

import (
	"context"
	"exrates/internal/adapters"
	"exrates/internal/domain"
	"time"
)

// ECBEpoch is the first publication day of the euro reference rates.
var ECBEpoch = domain.NewDate(1999, time.January, 4)

// FullHistoricLoader reads the complete ECB archive. It is expensive and meant to run rarely.
type FullHistoricLoader struct {
	*source
}

func (l *FullHistoricLoader) Fetch(ctx context.Context, _ domain.DateRange) ([]domain.RateRecord, error) {
	payload, err := l.download(ctx)
	if err != nil {
		return nil, err
	}
	records, err := parseECB(payload, false)
	if err != nil {
		return nil, err
	}

	kept := records[:0]
	for _, rec := range records {
		if !rec.Date.Before(ECBEpoch) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == 0 {
		return nil, domain.ErrEmptyResult
	}
	l.mark.advance(l.today())
	return kept, nil
}

func NewFullHistoricLoader(url string, client adapters.SourceClient) *FullHistoricLoader {
	return &FullHistoricLoader{source: newSource(url, client)}
}
