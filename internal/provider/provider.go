package provider

import (
	"context"
	"errors"
	"exrates/internal/adapters"
	"exrates/internal/domain"
	"exrates/internal/loader"
	"exrates/internal/metrics"
	"exrates/internal/store"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	fetchKey       = "fetch"
	archiveTimeout = time.Minute
)

// RateProvider answers rate queries for one provider type.
type RateProvider interface {
	Type() domain.ProviderType
	GetRate(ctx context.Context, base, term string, date domain.Date) (domain.ExchangeRate, error)
}

// HistoricProvider serves rates from an in-memory store and populates it lazily from its loader.
// Concurrent fetches are collapsed into one; reads never wait on each other.
type HistoricProvider struct {
	kind    domain.ProviderType
	pivot   string
	store   *store.HistoricStore
	loader  loader.SourceLoader
	archive adapters.RateArchive
	metrics *metrics.Metrics
	now     func() time.Time
	fetches singleflight.Group
	// in-flight archive writes
	archiving sync.WaitGroup
}

func (p *HistoricProvider) Type() domain.ProviderType { return p.kind }

func (p *HistoricProvider) GetRate(ctx context.Context, base, term string, date domain.Date) (domain.ExchangeRate, error) {
	rate, err := p.getRate(ctx, base, term, date)
	if err != nil {
		p.metrics.ObserveQuery(p.kind.String(), "error")
		return domain.ExchangeRate{}, err
	}
	p.metrics.ObserveQuery(p.kind.String(), "ok")
	return rate, nil
}

func (p *HistoricProvider) getRate(ctx context.Context, base, term string, date domain.Date) (domain.ExchangeRate, error) {
	base = normalizeCode(base)
	term = normalizeCode(term)
	if base == term {
		return unitRate(p.kind, base, date), nil
	}

	today := p.today()
	if date.After(today) {
		return domain.ExchangeRate{}, fmt.Errorf("%w: %s is in the future", domain.ErrUnsupportedDate, date)
	}
	if w, ok := p.loader.(loader.Windowed); ok {
		if window := w.Window(today); date.Before(window.From) {
			return domain.ExchangeRate{}, fmt.Errorf("%w: %s provider serves %s..%s", domain.ErrRangeTooOld, p.kind, window.From, window.To)
		}
	}

	target := date
	if target.IsCurrent() {
		target = today
	}
	if !p.store.CoversRange(target, target) {
		if err := p.populate(ctx, domain.DateRange{From: target, To: target}); err != nil {
			return domain.ExchangeRate{}, err
		}
	}

	pair := domain.CurrencyPair{Base: base, Term: term}
	if rate, ok := p.resolve(pair, date); ok {
		return rate, nil
	}
	return domain.ExchangeRate{}, fmt.Errorf("%w: %s %s on %s", domain.ErrRateUnavailable, p.kind, pair, date)
}

// Refresh fetches the source regardless of coverage.
func (p *HistoricProvider) Refresh(ctx context.Context) error {
	today := p.today()
	return p.collapse(ctx, func(fetchCtx context.Context) error {
		return p.fetchAndStore(fetchCtx, domain.DateRange{From: today, To: today})
	})
}

// Warm loads previously archived records into the store.
func (p *HistoricProvider) Warm(ctx context.Context) error {
	if p.archive == nil {
		return nil
	}
	records, through, err := p.archive.Load(ctx, p.kind)
	if err != nil {
		return fmt.Errorf("failed to load archived rates for %s: %w", p.kind, err)
	}
	p.store.PutAll(records, through)
	p.metrics.SetStored(p.kind.String(), p.store.Len())
	logrus.WithFields(logrus.Fields{"provider": p.kind, "records": len(records), "through": through}).Info("Provider warmed from archive")
	return nil
}

func (p *HistoricProvider) populate(ctx context.Context, r domain.DateRange) error {
	return p.collapse(ctx, func(fetchCtx context.Context) error {
		if p.store.CoversRange(r.From, r.To) {
			return nil
		}
		return p.fetchAndStore(fetchCtx, r)
	})
}

// collapse runs fn once for all concurrent callers. A caller whose ctx ends stops waiting,
// the fetch itself keeps going for the others.
func (p *HistoricProvider) collapse(ctx context.Context, fn func(context.Context) error) error {
	ch := p.fetches.DoChan(fetchKey, func() (any, error) {
		return nil, fn(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *HistoricProvider) fetchAndStore(ctx context.Context, r domain.DateRange) error {
	log := logrus.WithFields(logrus.Fields{"provider": p.kind, "fetch_id": uuid.NewString()})
	started := time.Now()

	records, err := p.loader.Fetch(ctx, r)
	switch {
	case errors.Is(err, domain.ErrEmptyResult):
		p.metrics.ObserveFetch(p.kind.String(), "empty", time.Since(started))
		log.Warn("Source returned no data")
		p.store.PutAll(nil, r.To)
		return nil
	case err != nil:
		p.metrics.ObserveFetch(p.kind.String(), "error", time.Since(started))
		log.WithError(err).Warn("Source fetch failed")
		return err
	}
	p.metrics.ObserveFetch(p.kind.String(), "ok", time.Since(started))

	through := p.loader.Watermark()
	if through.IsCurrent() || through.Before(r.To) {
		through = r.To
	}
	since, archived := p.store.Watermark()
	p.store.PutAll(records, through)
	p.metrics.SetStored(p.kind.String(), p.store.Len())
	log.Infof("%d records fetched, store holds %d, covered through %s", len(records), p.store.Len(), through)

	if !archived {
		since = domain.Current
	}
	p.archiveRecords(ctx, records, since, through, log)
	return nil
}

// archiveRecords writes dated records on or after since in the background; a Current since
// sends every dated record. The fetch never waits for the write.
func (p *HistoricProvider) archiveRecords(ctx context.Context, records []domain.RateRecord, since, through domain.Date, log *logrus.Entry) {
	if p.archive == nil {
		return
	}
	dated := make([]domain.RateRecord, 0, len(records))
	for _, r := range records {
		if !r.Date.IsCurrent() && !r.Date.Before(since) {
			dated = append(dated, r)
		}
	}
	if len(dated) == 0 {
		return
	}

	p.archiving.Add(1)
	go func() {
		defer p.archiving.Done()
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
		defer cancel()
		if err := p.archive.Save(saveCtx, p.kind, dated, through); err != nil {
			log.WithError(err).Warn("Failed to archive fetched rates")
			return
		}
		log.Debugf("%d records archived through %s", len(dated), through)
	}()
}

func (p *HistoricProvider) today() domain.Date { return domain.DateOf(p.now().UTC()) }

func normalizeCode(code string) string { return strings.ToUpper(strings.TrimSpace(code)) }

func unitRate(kind domain.ProviderType, code string, date domain.Date) domain.ExchangeRate {
	return domain.ExchangeRate{Provider: kind, Base: code, Term: code, Date: date, Factor: decimal.NewFromInt(1)}
}

func NewHistoricProvider(
	kind domain.ProviderType,
	pivot string,
	l loader.SourceLoader,
	archive adapters.RateArchive,
	m *metrics.Metrics,
) *HistoricProvider {
	return &HistoricProvider{
		kind:    kind,
		pivot:   pivot,
		store:   store.NewHistoricStore(),
		loader:  l,
		archive: archive,
		metrics: m,
		now:     time.Now,
	}
}
