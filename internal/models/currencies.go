package models

import "fmt"

// Currency describes one entry in the static currency table.
// The table is fixed and not user-extensible.
type Currency struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Currencies is the full table of supported currencies.
var Currencies = []Currency{
	{ID: "sol", Name: "Solana", Symbol: "SOL", Decimals: 9},
	{ID: "usdc", Name: "USD Coin", Symbol: "USDC", Decimals: 6},
	{ID: "usdt", Name: "Tether", Symbol: "USDT", Decimals: 6},
	{ID: "trump", Name: "Trump Coin", Symbol: "TRUMP", Decimals: 8},
	{ID: "bonk", Name: "Bonk", Symbol: "BONK", Decimals: 5},
	{ID: "wen", Name: "Wen Token", Symbol: "WEN", Decimals: 6},
}

// CurrencyByID looks up a currency by its identifier.
// Unknown identifiers fall back to the first table entry.
func CurrencyByID(id string) Currency {
	for _, c := range Currencies {
		if c.ID == id {
			return c
		}
	}
	return Currencies[0]
}

// FormatAmount renders an amount with the symbol of the given currency.
func FormatAmount(amount float64, currencyID string) string {
	c := CurrencyByID(currencyID)
	return fmt.Sprintf("%v %s", amount, c.Symbol)
}
