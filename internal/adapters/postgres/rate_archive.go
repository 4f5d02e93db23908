package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"exrates/internal/domain"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type RateArchive struct {
	pool *pgxpool.Pool
}

type archivedRecord struct {
	Base     string `json:"base"`
	Term     string `json:"term"`
	RateDate string `json:"rate_date"`
	Factor   string `json:"factor"`
}

// Save upserts dated records and raises the provider watermark in one transaction.
func (a *RateArchive) Save(ctx context.Context, provider domain.ProviderType, records []domain.RateRecord, through domain.Date) error {
	rows := make([]archivedRecord, 0, len(records))
	for _, r := range records {
		if r.Date.IsCurrent() || !r.Valid() {
			continue
		}
		rows = append(rows, archivedRecord{Base: r.Base, Term: r.Term, RateDate: r.Date.String(), Factor: r.Factor.String()})
	}

	payloadJSON, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rate records: %w", err)
	}

	const upsertRecords = `
		insert into fx_rate_records(provider, base, term, rate_date, factor, fetched_at)
		select $1, r.base, r.term, r.rate_date, r.factor, now()
		from json_to_recordset($2::json) as r(base text, term text, rate_date date, factor numeric)
		on conflict (provider, base, term, rate_date) do update
		set factor = excluded.factor, fetched_at = excluded.fetched_at;
	`
	const upsertWatermark = `
		insert into fx_rate_watermarks(provider, through, updated_at)
		values ($1, $2::date, now())
		on conflict (provider) do update
		set through = greatest(fx_rate_watermarks.through, excluded.through), updated_at = now();
	`

	tx, err := a.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if len(rows) > 0 {
		if _, err = tx.Exec(ctx, upsertRecords, provider.String(), json.RawMessage(payloadJSON)); err != nil {
			return fmt.Errorf("failed to upsert %d rate records for %s: %w", len(rows), provider, err)
		}
	}
	if !through.IsCurrent() {
		if _, err = tx.Exec(ctx, upsertWatermark, provider.String(), through.String()); err != nil {
			return fmt.Errorf("failed to update watermark for %s: %w", provider, err)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Load returns every archived record of provider and its watermark.
func (a *RateArchive) Load(ctx context.Context, provider domain.ProviderType) ([]domain.RateRecord, domain.Date, error) {
	const selectRecords = `
		select base, term, rate_date, factor::text
		from fx_rate_records
		where provider = $1
		order by rate_date, base, term;
	`

	rows, err := a.pool.Query(ctx, selectRecords, provider.String())
	if err != nil {
		return nil, domain.Current, fmt.Errorf("failed to query rate records for %s: %w", provider, err)
	}
	defer rows.Close()

	records := make([]domain.RateRecord, 0, 1024)
	for rows.Next() {
		var (
			r        domain.RateRecord
			rateDate time.Time
			factor   string
		)
		if err = rows.Scan(&r.Base, &r.Term, &rateDate, &factor); err != nil {
			return nil, domain.Current, fmt.Errorf("failed to scan rate record: %w", err)
		}
		if r.Factor, err = decimal.NewFromString(factor); err != nil {
			return nil, domain.Current, fmt.Errorf("failed to parse factor %q: %w", factor, err)
		}
		r.Date = domain.DateOf(rateDate)
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, domain.Current, fmt.Errorf("error iterating rate records: %w", err)
	}

	var through time.Time
	err = a.pool.QueryRow(ctx, `select through from fx_rate_watermarks where provider = $1`, provider.String()).Scan(&through)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return records, domain.Current, nil
		}
		return nil, domain.Current, fmt.Errorf("failed to select watermark for %s: %w", provider, err)
	}
	return records, domain.DateOf(through), nil
}

func NewRateArchive(pool *pgxpool.Pool) *RateArchive {
	return &RateArchive{pool: pool}
}
