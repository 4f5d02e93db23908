package handler

import (
	"context"
	"encoding/json"
	"errors"
	"exrates/internal/domain"
	"exrates/internal/rate"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockValidator struct{ mock.Mock }

func (m *MockValidator) ValidateCodes(base, term string) error {
	args := m.Called(base, term)
	return args.Error(0)
}

func (m *MockValidator) ParseAmount(raw string) (decimal.Decimal, error) {
	args := m.Called(raw)
	d, _ := args.Get(0).(decimal.Decimal)
	return d, args.Error(1)
}

func (m *MockValidator) ValidateScale(scale int) error {
	args := m.Called(scale)
	return args.Error(0)
}

type MockService struct{ mock.Mock }

func (m *MockService) GetRate(ctx context.Context, token, base, term string, date domain.Date) (rate.View, error) {
	args := m.Called(ctx, token, base, term, date)
	v, _ := args.Get(0).(rate.View)
	return v, args.Error(1)
}

func (m *MockService) Convert(ctx context.Context, token string, amount decimal.Decimal, from, to string, date domain.Date, scale *int32) (rate.ConversionView, error) {
	args := m.Called(ctx, token, amount, from, to, date, scale)
	v, _ := args.Get(0).(rate.ConversionView)
	return v, args.Error(1)
}

func (m *MockService) Providers() []rate.ProviderView {
	args := m.Called()
	v, _ := args.Get(0).([]rate.ProviderView)
	return v
}

type errorJSON struct {
	Error string `json:"error"`
}

var friday = domain.NewDate(2025, time.March, 7)

func eurUSDView() rate.View {
	return rate.View{
		Provider: domain.ProviderECBHistoric,
		Base:     "EUR",
		Term:     "USD",
		Date:     friday,
		Factor:   decimal.RequireFromString("1.0830"),
	}
}

func withParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func rateRequest(target, provider, base, term string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return withParams(req, map[string]string{"provider": provider, "base": base, "term": term})
}

// --- GetRate ---

func TestHandler_GetRate_ValidationErrors(t *testing.T) {
	cases := []struct {
		name         string
		validatorErr error
	}{
		{name: "base required", validatorErr: rate.ErrBaseRequired},
		{name: "term required", validatorErr: rate.ErrTermRequired},
		{name: "base invalid", validatorErr: rate.ErrBaseInvalid},
		{name: "term invalid", validatorErr: rate.ErrTermInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockValidator := new(MockValidator)
			mockService := new(MockService)
			h := NewRateHandler(mockValidator, mockService)

			req := rateRequest("/api/v1/rates/ECB/eur/usd", "ECB", " eur ", "usd")
			rr := httptest.NewRecorder()
			mockValidator.On("ValidateCodes", "EUR", "USD").Return(tc.validatorErr).Once()

			h.GetRate(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.Equal(t, tc.validatorErr.Error(), ej.Error)

			mockService.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			mockValidator.AssertExpectations(t)
		})
	}
}

func TestHandler_GetRate_InvalidDate(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	req := rateRequest("/api/v1/rates/ECB-HIST/EUR/USD?date=07.03.2025", "ECB-HIST", "EUR", "USD")
	rr := httptest.NewRecorder()
	mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()

	h.GetRate(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	mockService.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetRate_ErrorKinds(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown provider", err: fmt.Errorf("%w: %q", domain.ErrUnknownProviderType, "NOPE"), wantStatus: http.StatusNotFound},
		{name: "rate unavailable", err: domain.ErrRateUnavailable, wantStatus: http.StatusNotFound},
		{name: "unsupported date", err: domain.ErrUnsupportedDate, wantStatus: http.StatusUnprocessableEntity},
		{name: "range too old", err: domain.ErrRangeTooOld, wantStatus: http.StatusUnprocessableEntity},
		{name: "currency mismatch", err: domain.ErrCurrencyMismatch, wantStatus: http.StatusUnprocessableEntity},
		{name: "source unavailable", err: domain.ErrSourceUnavailable, wantStatus: http.StatusBadGateway},
		{name: "malformed data", err: domain.ErrMalformedData, wantStatus: http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockValidator := new(MockValidator)
			mockService := new(MockService)
			h := NewRateHandler(mockValidator, mockService)

			req := rateRequest("/api/v1/rates/ECB-HIST/EUR/USD?date=2025-03-07", "ECB-HIST", "EUR", "USD")
			rr := httptest.NewRecorder()
			mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()
			mockService.On("GetRate", mock.Anything, "ECB-HIST", "EUR", "USD", friday).Return(rate.View{}, tc.err).Once()

			h.GetRate(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.Equal(t, tc.err.Error(), ej.Error)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_GetRate_InternalError(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	req := rateRequest("/api/v1/rates/ECB/EUR/USD", "ECB", "EUR", "USD")
	rr := httptest.NewRecorder()
	mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()
	mockService.On("GetRate", mock.Anything, "ECB", "EUR", "USD", domain.Current).Return(rate.View{}, errors.New("boom")).Once()

	h.GetRate(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "ups, couldn't get rate this time", ej.Error)
}

func TestHandler_GetRate_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	req := rateRequest("/api/v1/rates/ECB-HIST/eur/usd?date=2025-03-07", "ECB-HIST", "eur", "usd")
	rr := httptest.NewRecorder()
	mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()
	mockService.On("GetRate", mock.Anything, "ECB-HIST", "EUR", "USD", friday).Return(eurUSDView(), nil).Once()

	h.GetRate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res RateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, RateResponse{
		Provider: "ECB-HIST",
		Base:     "EUR",
		Term:     "USD",
		Date:     "2025-03-07",
		Factor:   "1.083",
	}, res)
	mockValidator.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

// --- Convert ---

func convertRequest(target, provider string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return withParams(req, map[string]string{"provider": provider})
}

func TestHandler_Convert_AmountErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		err  error
	}{
		{name: "missing", raw: "", err: rate.ErrAmountRequired},
		{name: "not a number", raw: "ten", err: rate.ErrAmountInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockValidator := new(MockValidator)
			mockService := new(MockService)
			h := NewRateHandler(mockValidator, mockService)

			req := convertRequest("/api/v1/convert/ECB?from=EUR&to=USD&amount="+tc.raw, "ECB")
			rr := httptest.NewRecorder()
			mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()
			mockValidator.On("ParseAmount", tc.raw).Return(decimal.Decimal{}, tc.err).Once()

			h.Convert(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.Equal(t, tc.err.Error(), ej.Error)
			mockService.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Convert_InvalidScale(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	req := convertRequest("/api/v1/convert/ECB?from=EUR&to=USD&amount=10&scale=x", "ECB")
	rr := httptest.NewRecorder()
	mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()
	mockValidator.On("ParseAmount", "10").Return(decimal.NewFromInt(10), nil).Once()

	h.Convert(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	mockValidator.AssertNotCalled(t, "ValidateScale", mock.Anything)

	req = convertRequest("/api/v1/convert/ECB?from=EUR&to=USD&amount=10&scale=40", "ECB")
	rr = httptest.NewRecorder()
	mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()
	mockValidator.On("ParseAmount", "10").Return(decimal.NewFromInt(10), nil).Once()
	mockValidator.On("ValidateScale", 40).Return(rate.ErrScaleInvalid).Once()

	h.Convert(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, rate.ErrScaleInvalid.Error(), ej.Error)
	mockService.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Convert_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	amount := decimal.RequireFromString("100")
	scaleTwo := mock.MatchedBy(func(s *int32) bool { return s != nil && *s == 2 })
	req := convertRequest("/api/v1/convert/ECB-HIST?from=eur&to=usd&amount=100&date=2025-03-07&scale=2", "ECB-HIST")
	rr := httptest.NewRecorder()
	mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()
	mockValidator.On("ParseAmount", "100").Return(amount, nil).Once()
	mockValidator.On("ValidateScale", 2).Return(nil).Once()
	mockService.On("Convert", mock.Anything, "ECB-HIST", amount, "EUR", "USD", friday, scaleTwo).
		Return(rate.ConversionView{Rate: eurUSDView(), Amount: amount, Converted: decimal.RequireFromString("108.30")}, nil).Once()

	h.Convert(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res ConvertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "100", res.Amount)
	require.Equal(t, "108.3", res.Converted)
	require.Equal(t, "1.083", res.Rate.Factor)
	require.Equal(t, "2025-03-07", res.Rate.Date)
	mockValidator.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestHandler_Convert_ServiceError(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewRateHandler(mockValidator, mockService)

	amount := decimal.NewFromInt(5)
	req := convertRequest("/api/v1/convert/IDENT?from=EUR&to=USD&amount=5", "IDENT")
	rr := httptest.NewRecorder()
	mockValidator.On("ValidateCodes", "EUR", "USD").Return(nil).Once()
	mockValidator.On("ParseAmount", "5").Return(amount, nil).Once()
	mockService.On("Convert", mock.Anything, "IDENT", amount, "EUR", "USD", domain.Current, (*int32)(nil)).
		Return(rate.ConversionView{}, fmt.Errorf("failed to convert: %w", domain.ErrCurrencyMismatch)).Once()

	h.Convert(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	mockService.AssertExpectations(t)
}

// --- ListProviders ---

func TestHandler_ListProviders(t *testing.T) {
	mockService := new(MockService)
	h := NewRateHandler(new(MockValidator), mockService)
	mockService.On("Providers").Return([]rate.ProviderView{
		{Type: domain.ProviderECB, Description: "Exchange rate to the European Central Bank."},
		{Type: domain.ProviderIdentity, Description: "Identity"},
	}).Once()

	rr := httptest.NewRecorder()
	h.ListProviders(rr, httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ListProvidersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Providers, 2)
	require.Equal(t, "ECB", res.Providers[0].Type)
	require.Equal(t, "IDENT", res.Providers[1].Type)
}
