package rate

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxScale bounds the rounding scale accepted for converted amounts.
const MaxScale = 16

var (
	ErrBaseRequired   = errors.New("base currency is required")
	ErrTermRequired   = errors.New("term currency is required")
	ErrBaseInvalid    = errors.New("base currency must be a three letter code")
	ErrTermInvalid    = errors.New("term currency must be a three letter code")
	ErrAmountRequired = errors.New("amount is required")
	ErrAmountInvalid  = errors.New("amount must be a decimal number")
	ErrScaleInvalid   = errors.New("scale must be between 0 and 16")
)

type CurrencyValidator struct{}

func (v *CurrencyValidator) ValidateCodes(base, term string) error {
	if base == "" {
		return ErrBaseRequired
	}
	if term == "" {
		return ErrTermRequired
	}
	if !isCode(base) {
		return ErrBaseInvalid
	}
	if !isCode(term) {
		return ErrTermInvalid
	}
	return nil
}

func (v *CurrencyValidator) ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, ErrAmountRequired
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, ErrAmountInvalid
	}
	return amount, nil
}

func (v *CurrencyValidator) ValidateScale(scale int) error {
	if scale < 0 || scale > MaxScale {
		return ErrScaleInvalid
	}
	return nil
}

func isCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func NewValidator() *CurrencyValidator {
	return &CurrencyValidator{}
}
