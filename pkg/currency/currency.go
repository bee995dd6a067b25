package currency

import (
	"fmt"
	"strings"
)

// Converter turns an amount in one currency into another. Implementations
// must be pure: identical inputs yield identical outputs for the lifetime of
// the converter.
type Converter interface {
	Convert(amount float64, from, to string) (float64, error)
}

// Rate source and staleness policy are external concerns. The static table
// below exists so the client works offline; swap in a live implementation of
// Converter where rates matter.
type StaticConverter struct {
	// rates are expressed against one USD.
	rates map[string]float64
}

func NewStaticConverter() *StaticConverter {
	return &StaticConverter{
		rates: map[string]float64{
			"USD": 1,
			"EUR": 0.92,
			"GBP": 0.79,
			"NGN": 1550,
		},
	}
}

func (c *StaticConverter) Convert(amount float64, from, to string) (float64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if from == to {
		return amount, nil
	}

	fromRate, ok := c.rates[from]
	if !ok {
		return 0, fmt.Errorf("unknown currency: %s", from)
	}
	toRate, ok := c.rates[to]
	if !ok {
		return 0, fmt.Errorf("unknown currency: %s", to)
	}

	return amount / fromRate * toRate, nil
}

// Supported reports whether a code is present in the rate table.
func (c *StaticConverter) Supported(code string) bool {
	_, ok := c.rates[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}
