package handler

import (
	"exrates/internal/domain"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type ConvertResponse struct {
	Rate      RateResponse `json:"rate"`
	Amount    string       `json:"amount" example:"100"`
	Converted string       `json:"converted" example:"108.30"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Converts amount from one currency to another using the provider's rate. With scale the converted amount is rounded half away from zero.
// @Tags Rates
// @Produce json
// @Param provider path string true "Provider type" Enums(ECB, IMF, ECB-HIST90, ECB-HIST, IDENT)
// @Param from query string true "Source currency (ISO 4217)"
// @Param to query string true "Target currency (ISO 4217)"
// @Param amount query string true "Decimal amount"
// @Param date query string false "Date as YYYY-MM-DD"
// @Param scale query int false "Fraction digits of the converted amount"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /convert/{provider} [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(chi.URLParam(r, "provider"))
	q := r.URL.Query()
	from := strings.ToUpper(strings.TrimSpace(q.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(q.Get("to")))

	if err := h.validator.ValidateCodes(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := h.validator.ParseAmount(q.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := domain.ParseDate(q.Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var scale *int32
	if raw := strings.TrimSpace(q.Get("scale")); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid scale %q", raw))
			return
		}
		if err = h.validator.ValidateScale(n); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s := int32(n)
		scale = &s
	}

	res, err := h.service.Convert(r.Context(), token, amount, from, to, date, scale)
	if err != nil {
		writeServiceError(w, err, logrus.Fields{"handler": "Convert", "provider": token, "from": from, "to": to, "date": date})
		return
	}
	writeJSON(w, http.StatusOK, ConvertResponse{
		Rate:      toRateResponse(res.Rate),
		Amount:    res.Amount.String(),
		Converted: res.Converted.String(),
	})
}
