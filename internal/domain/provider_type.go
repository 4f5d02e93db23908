package domain

import (
	"fmt"
	"strings"
)

type ProviderType string

const (
	ProviderECB           ProviderType = "ECB"
	ProviderIMF           ProviderType = "IMF"
	ProviderECBHistoric90 ProviderType = "ECB-HIST90"
	ProviderECBHistoric   ProviderType = "ECB-HIST"
	ProviderIdentity      ProviderType = "IDENT"
)

var providerDescriptions = map[ProviderType]string{
	ProviderECB:           "Exchange rate to the European Central Bank.",
	ProviderIMF:           "Exchange rate to the International Monetary Fond.",
	ProviderECBHistoric90: "Exchange rate to European Central Bank (last 90 days).",
	ProviderECBHistoric:   "Exchange rate to the European Central Bank that loads all data up to 1999 into its historic data cache.",
	ProviderIdentity:      "Exchange rate rate with factor one for identical base/term currencies",
}

// AllProviderTypes returns the closed set of provider types in a stable order.
func AllProviderTypes() []ProviderType {
	return []ProviderType{ProviderECB, ProviderIMF, ProviderECBHistoric90, ProviderECBHistoric, ProviderIdentity}
}

func ParseProviderType(token string) (ProviderType, error) {
	t := ProviderType(strings.ToUpper(strings.TrimSpace(token)))
	if _, ok := providerDescriptions[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProviderType, token)
	}
	return t, nil
}

func (t ProviderType) String() string { return string(t) }

func (t ProviderType) Description() string { return providerDescriptions[t] }
