package loader

import "strings"

var imfCurrencies = map[string]string{
	"algerian dinar":      "DZD",
	"australian dollar":   "AUD",
	"bahrain dinar":       "BHD",
	"bahraini dinar":      "BHD",
	"botswana pula":       "BWP",
	"brazilian real":      "BRL",
	"brunei dollar":       "BND",
	"canadian dollar":     "CAD",
	"chilean peso":        "CLP",
	"chinese yuan":        "CNY",
	"colombian peso":      "COP",
	"czech koruna":        "CZK",
	"danish krone":        "DKK",
	"euro":                "EUR",
	"hungarian forint":    "HUF",
	"icelandic krona":     "ISK",
	"indian rupee":        "INR",
	"indonesian rupiah":   "IDR",
	"iranian rial":        "IRR",
	"israeli new shekel":  "ILS",
	"japanese yen":        "JPY",
	"kazakhstani tenge":   "KZT",
	"korean won":          "KRW",
	"kuwaiti dinar":       "KWD",
	"libyan dinar":        "LYD",
	"malaysian ringgit":   "MYR",
	"mauritian rupee":     "MUR",
	"mexican peso":        "MXN",
	"nepalese rupee":      "NPR",
	"new zealand dollar":  "NZD",
	"norwegian krone":     "NOK",
	"omani rial":          "OMR",
	"pakistani rupee":     "PKR",
	"peruvian sol":        "PEN",
	"philippine peso":     "PHP",
	"polish zloty":        "PLN",
	"qatari riyal":        "QAR",
	"russian ruble":       "RUB",
	"saudi arabian riyal": "SAR",
	"singapore dollar":    "SGD",
	"south african rand":  "ZAR",
	"sri lankan rupee":    "LKR",
	"swedish krona":       "SEK",
	"swiss franc":         "CHF",
	"thai baht":           "THB",
	"trinidadian dollar":  "TTD",
	"tunisian dinar":      "TND",
	"u.a.e. dirham":       "AED",
	"u.k. pound":          "GBP",
	"u.s. dollar":         "USD",
	"uruguayan peso":      "UYU",
}

// imfCurrencyCode maps an IMF currency label such as "U.S. dollar" to its ISO code.
func imfCurrencyCode(label string) (string, bool) {
	label = strings.ToLower(strings.Join(strings.Fields(label), " "))
	if i := strings.Index(label, "("); i > 0 {
		label = strings.TrimSpace(label[:i])
	}
	code, ok := imfCurrencies[label]
	return code, ok
}
