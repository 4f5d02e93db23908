package handler

import "net/http"

type ProviderResponse struct {
	Type        string `json:"type" example:"ECB"`
	Description string `json:"description" example:"Exchange rate to the European Central Bank."`
}

type ListProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// ListProviders godoc
// @Summary List providers
// @Description All provider types that can be passed as {provider}
// @Tags Providers
// @Produce json
// @Success 200 {object} ListProvidersResponse
// @Router /providers [get]
func (h *Handler) ListProviders(w http.ResponseWriter, _ *http.Request) {
	views := h.service.Providers()
	res := ListProvidersResponse{Providers: make([]ProviderResponse, 0, len(views))}
	for _, v := range views {
		res.Providers = append(res.Providers, ProviderResponse{Type: v.Type.String(), Description: v.Description})
	}
	writeJSON(w, http.StatusOK, res)
}
