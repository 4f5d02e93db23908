package loader

import (
	"cmp"
	"context"
	"exrates/internal/adapters"
	"exrates/internal/domain"
	"slices"
	"sync"
	"time"
)

// SourceLoader fetches one upstream feed and normalizes it into rate records.
//
// Fetch fails with domain.ErrSourceUnavailable, domain.ErrMalformedData or
// domain.ErrEmptyResult. Watermark is the last day a fetch succeeded.
type SourceLoader interface {
	Fetch(ctx context.Context, r domain.DateRange) ([]domain.RateRecord, error)
	Watermark() domain.Date
}

// Windowed is implemented by loaders that only serve a trailing window of days.
type Windowed interface {
	Window(today domain.Date) domain.DateRange
}

type watermark struct {
	mu   sync.Mutex
	date domain.Date
}

func (w *watermark) advance(d domain.Date) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.date.IsCurrent() || d.After(w.date) {
		w.date = d
	}
}

func (w *watermark) get() domain.Date {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.date
}

// source holds what every loader needs to download one feed.
type source struct {
	url    string
	client adapters.SourceClient
	now    func() time.Time
	mark   watermark
}

func (s *source) download(ctx context.Context) ([]byte, error) {
	return s.client.Fetch(ctx, s.url)
}

func (s *source) today() domain.Date { return domain.DateOf(s.now().UTC()) }

func (s *source) Watermark() domain.Date { return s.mark.get() }

func newSource(url string, client adapters.SourceClient) *source {
	return &source{url: url, client: client, now: time.Now}
}

func sortRecords(records []domain.RateRecord) {
	slices.SortFunc(records, func(a, b domain.RateRecord) int {
		return cmp.Or(
			a.Date.Compare(b.Date),
			cmp.Compare(a.Base, b.Base),
			cmp.Compare(a.Term, b.Term),
		)
	})
}
