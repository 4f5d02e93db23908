package loader

import (
	"bufio"
	"bytes"
	"context"
	"exrates/internal/adapters"
	"exrates/internal/domain"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// IMFPivot is the special drawing right, the native unit of the IMF feed.
const IMFPivot = "XDR"

const imfDateLayout = "January 2, 2006"

type imfSection int

const (
	imfNoSection   imfSection = iota
	imfUnitsPerSDR            // rows are XDR→X
	imfSDRsPerUnit            // rows are X→XDR
)

// IMFLoader reads the IMF "SDRs per currency unit" report of the last five days.
type IMFLoader struct {
	*source
}

func (l *IMFLoader) Fetch(ctx context.Context, _ domain.DateRange) ([]domain.RateRecord, error) {
	payload, err := l.download(ctx)
	if err != nil {
		return nil, err
	}
	records, err := parseIMF(payload)
	if err != nil {
		return nil, err
	}
	l.mark.advance(l.today())
	return records, nil
}

func parseIMF(payload []byte) ([]domain.RateRecord, error) {
	var (
		section  = imfNoSection
		sections int
		dates    []domain.Date
		byKey    = make(map[recordKey]domain.RateRecord)
	)

	sc := bufio.NewScanner(bytes.NewReader(payload))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, "\t")
		first := strings.TrimSpace(cells[0])

		switch {
		case strings.HasPrefix(first, "Currency units per SDR"):
			section, dates = imfUnitsPerSDR, nil
			sections++
			continue
		case strings.HasPrefix(first, "SDRs per Currency unit"):
			section, dates = imfSDRsPerUnit, nil
			sections++
			continue
		case section == imfNoSection:
			continue
		case first == "Currency":
			parsed, err := parseIMFHeader(cells[1:])
			if err != nil {
				return nil, err
			}
			dates = parsed
			continue
		}

		code, ok := imfCurrencyCode(first)
		if !ok || len(cells) < 2 {
			continue
		}
		if dates == nil {
			return nil, fmt.Errorf("%w: IMF row %q before date header", domain.ErrMalformedData, first)
		}
		for i, cell := range cells[1:] {
			if i >= len(dates) {
				break
			}
			v := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
			if v == "" || strings.EqualFold(v, "NA") || dates[i].IsCurrent() {
				continue
			}
			factor, err := decimal.NewFromString(v)
			if err != nil || !factor.IsPositive() {
				return nil, fmt.Errorf("%w: bad IMF value %q for %s", domain.ErrMalformedData, cell, first)
			}
			rec := domain.RateRecord{Base: IMFPivot, Term: code, Date: dates[i], Factor: factor}
			if section == imfSDRsPerUnit {
				rec.Base, rec.Term = code, IMFPivot
			}
			byKey[recordKey{pair: rec.Pair(), date: rec.Date}] = rec
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to scan IMF report: %w", domain.ErrMalformedData, err)
	}
	if sections == 0 {
		return nil, fmt.Errorf("%w: IMF report has no rate sections", domain.ErrMalformedData)
	}
	if len(byKey) == 0 {
		return nil, domain.ErrEmptyResult
	}

	records := make([]domain.RateRecord, 0, len(byKey))
	for _, rec := range byKey {
		records = append(records, rec)
	}
	sortRecords(records)
	return records, nil
}

type recordKey struct {
	pair domain.CurrencyPair
	date domain.Date
}

// parseIMFHeader parses the date columns. Blank columns map to the current marker and are skipped.
func parseIMFHeader(cells []string) ([]domain.Date, error) {
	dates := make([]domain.Date, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		t, err := time.Parse(imfDateLayout, cell)
		if err != nil {
			return nil, fmt.Errorf("%w: bad IMF date header %q", domain.ErrMalformedData, cell)
		}
		dates[i] = domain.DateOf(t)
	}
	return dates, nil
}

func NewIMFLoader(url string, client adapters.SourceClient) *IMFLoader {
	return &IMFLoader{source: newSource(url, client)}
}
