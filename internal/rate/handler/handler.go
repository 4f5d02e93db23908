package handler

import (
	"context"
	"encoding/json"
	"errors"
	"exrates/internal/domain"
	"exrates/internal/rate"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Validator interface {
	ValidateCodes(base, term string) error
	ParseAmount(raw string) (decimal.Decimal, error)
	ValidateScale(scale int) error
}

type Service interface {
	GetRate(ctx context.Context, token, base, term string, date domain.Date) (rate.View, error)
	Convert(ctx context.Context, token string, amount decimal.Decimal, from, to string, date domain.Date, scale *int32) (rate.ConversionView, error)
	Providers() []rate.ProviderView
}

type Handler struct {
	validator Validator
	service   Service
}

func NewRateHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeServiceError maps provider error kinds onto statuses. Unknown errors are logged
// and reported without details.
func writeServiceError(w http.ResponseWriter, err error, fields logrus.Fields) {
	switch {
	case errors.Is(err, domain.ErrUnknownProviderType), errors.Is(err, domain.ErrRateUnavailable):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnsupportedDate),
		errors.Is(err, domain.ErrRangeTooOld),
		errors.Is(err, domain.ErrCurrencyMismatch):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrSourceUnavailable), errors.Is(err, domain.ErrMalformedData):
		logrus.WithError(err).WithFields(fields).Warn("upstream source failed")
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		msg := "ups, couldn't get rate this time"
		logrus.WithError(err).WithFields(fields).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}
