package loader

import (
	"context"
	"exrates/internal/adapters"
	"exrates/internal/domain"
)

// CurrentLoader reads the latest ECB reference rates. The requested range is ignored.
type CurrentLoader struct {
	*source
}

func (l *CurrentLoader) Fetch(ctx context.Context, _ domain.DateRange) ([]domain.RateRecord, error) {
	payload, err := l.download(ctx)
	if err != nil {
		return nil, err
	}
	records, err := parseECB(payload, true)
	if err != nil {
		return nil, err
	}
	l.mark.advance(l.today())
	return records, nil
}

func NewCurrentLoader(url string, client adapters.SourceClient) *CurrentLoader {
	return &CurrentLoader{source: newSource(url, client)}
}
