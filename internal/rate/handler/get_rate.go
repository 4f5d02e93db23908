package handler

import (
	"exrates/internal/domain"
	"exrates/internal/rate"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type RateResponse struct {
	Provider string `json:"provider" example:"ECB-HIST"`
	Base     string `json:"base" example:"EUR"`
	Term     string `json:"term" example:"USD"`
	Date     string `json:"date" example:"2025-03-07"`
	Factor   string `json:"factor" example:"1.083"`
	Derived  bool   `json:"derived" example:"false"`
}

func toRateResponse(v rate.View) RateResponse {
	return RateResponse{
		Provider: v.Provider.String(),
		Base:     v.Base,
		Term:     v.Term,
		Date:     v.Date.String(),
		Factor:   v.Factor.String(),
		Derived:  v.Derived,
	}
}

// GetRate godoc
// @Summary Get exchange rate
// @Description Rate of one unit of base in term currency, as published by the provider for the given date. Without a date the current rate is returned.
// @Tags Rates
// @Produce json
// @Param provider path string true "Provider type" Enums(ECB, IMF, ECB-HIST90, ECB-HIST, IDENT)
// @Param base path string true "Base currency (ISO 4217)"
// @Param term path string true "Term currency (ISO 4217)"
// @Param date query string false "Date as YYYY-MM-DD"
// @Success 200 {object} RateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /rates/{provider}/{base}/{term} [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(chi.URLParam(r, "provider"))
	base := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))
	term := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "term")))

	if err := h.validator.ValidateCodes(base, term); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.service.GetRate(r.Context(), token, base, term, date)
	if err != nil {
		writeServiceError(w, err, logrus.Fields{"handler": "GetRate", "provider": token, "base": base, "term": term, "date": date})
		return
	}
	writeJSON(w, http.StatusOK, toRateResponse(view))
}
