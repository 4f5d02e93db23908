package domain

import "errors"

var (
	ErrSourceUnavailable   = errors.New("rate source unavailable")
	ErrMalformedData       = errors.New("malformed rate data")
	ErrEmptyResult         = errors.New("rate source returned no data")
	ErrRangeTooOld         = errors.New("date is older than the provider window")
	ErrRateUnavailable     = errors.New("rate unavailable")
	ErrUnsupportedDate     = errors.New("unsupported date")
	ErrCurrencyMismatch    = errors.New("base and term currency differ")
	ErrUnknownProviderType = errors.New("unknown provider type")
)
