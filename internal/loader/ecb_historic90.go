package loader

import (
	"context"
	"exrates/internal/adapters"
	"exrates/internal/domain"
	"fmt"
)

const historicWindowDays = 90

// Historic90Loader reads the ECB trailing 90 day file.
type Historic90Loader struct {
	*source
}

func (l *Historic90Loader) Window(today domain.Date) domain.DateRange {
	return domain.DateRange{From: today.AddDays(-historicWindowDays), To: today}
}

// Fetch returns every record of the window. A range starting before the window fails with domain.ErrRangeTooOld.
func (l *Historic90Loader) Fetch(ctx context.Context, r domain.DateRange) ([]domain.RateRecord, error) {
	window := l.Window(l.today())
	if r.From.Before(window.From) {
		return nil, fmt.Errorf("%w: %s is before %s", domain.ErrRangeTooOld, r.From, window.From)
	}

	payload, err := l.download(ctx)
	if err != nil {
		return nil, err
	}
	records, err := parseECB(payload, false)
	if err != nil {
		return nil, err
	}

	inWindow := records[:0]
	for _, rec := range records {
		if !rec.Date.Before(window.From) {
			inWindow = append(inWindow, rec)
		}
	}
	if len(inWindow) == 0 {
		return nil, domain.ErrEmptyResult
	}
	l.mark.advance(window.To)
	return inWindow, nil
}

func NewHistoric90Loader(url string, client adapters.SourceClient) *Historic90Loader {
	return &Historic90Loader{source: newSource(url, client)}
}
