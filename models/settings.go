package models

import (
	"encoding/json"
)

// Currency is the display currency preference
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// DefaultCurrency returns the out-of-box currency preference
func DefaultCurrency() Currency {
	return Currency{Code: "INR", Symbol: "₹"}
}

// SupportedCurrencies lists the currencies the settings screen offers
func SupportedCurrencies() []Currency {
	return []Currency{
		{Code: "INR", Symbol: "₹"},
		{Code: "USD", Symbol: "$"},
		{Code: "EUR", Symbol: "€"},
		{Code: "GBP", Symbol: "£"},
	}
}

// IsSupported reports whether c matches one of the supported currencies
func (c Currency) IsSupported() bool {
	for _, s := range SupportedCurrencies() {
		if c.Code == s.Code && c.Symbol == s.Symbol {
			return true
		}
	}
	return false
}

// ToJSON converts the currency to JSON
func (c *Currency) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// FromJSON populates the currency from JSON
func (c *Currency) FromJSON(data []byte) error {
	return json.Unmarshal(data, c)
}

// ThemeMode is the persisted light/dark preference
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// IsValid reports whether the mode is one of the two known values
func (m ThemeMode) IsValid() bool {
	return m == ThemeLight || m == ThemeDark
}
