package loader

import (
	"bytes"
	"encoding/xml"
	"exrates/internal/domain"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const ecbPivot = "EUR"

type ecbEnvelope struct {
	XMLName xml.Name  `xml:"Envelope"`
	Cube    *ecbCubes `xml:"Cube"`
}

type ecbCubes struct {
	Days []ecbDay `xml:"Cube"`
}

type ecbDay struct {
	Time  string    `xml:"time,attr"`
	Rates []ecbRate `xml:"Cube"`
}

type ecbRate struct {
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}

// parseECB turns an eurofxref document into EUR→X records.
// With asCurrent set every record carries the current marker instead of its publication day.
func parseECB(payload []byte, asCurrent bool) ([]domain.RateRecord, error) {
	var env ecbEnvelope
	if err := xml.NewDecoder(bytes.NewReader(payload)).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode ECB document: %w", domain.ErrMalformedData, err)
	}
	if env.Cube == nil {
		return nil, fmt.Errorf("%w: ECB document has no Cube element", domain.ErrMalformedData)
	}

	records := make([]domain.RateRecord, 0, len(env.Cube.Days)*32)
	for _, day := range env.Cube.Days {
		date, err := domain.ParseDate(day.Time)
		if err != nil || date.IsCurrent() {
			return nil, fmt.Errorf("%w: bad ECB cube time %q", domain.ErrMalformedData, day.Time)
		}
		if asCurrent {
			date = domain.Current
		}
		for _, r := range day.Rates {
			code := strings.ToUpper(strings.TrimSpace(r.Currency))
			if len(code) != 3 {
				return nil, fmt.Errorf("%w: bad ECB currency %q on %s", domain.ErrMalformedData, r.Currency, day.Time)
			}
			factor, err := decimal.NewFromString(strings.TrimSpace(r.Rate))
			if err != nil || !factor.IsPositive() {
				return nil, fmt.Errorf("%w: bad ECB rate %q for %s on %s", domain.ErrMalformedData, r.Rate, code, day.Time)
			}
			records = append(records, domain.RateRecord{Base: ecbPivot, Term: code, Date: date, Factor: factor})
		}
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyResult
	}

	sortRecords(records)
	return records, nil
}
