package service

import (
	"time"

	"homehive/pkg/currency"
	"homehive/pkg/model"
)

const dateLayout = "2006-01-02"

// Nights returns the ceiling of the calendar-day difference between the two
// dates, and 0 when either date is missing or malformed.
func Nights(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return 0
	}

	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}

	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}

	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// ComputeQuote derives pricing for a draft against a property, with the
// nightly rate converted into the display currency. It is pure: callers
// recompute on every input change instead of caching.
func ComputeQuote(property *model.Property, draft *model.BookingDraft, displayCurrency string, converter currency.Converter) (model.Quote, error) {
	quote := model.Quote{Currency: displayCurrency}
	if property == nil {
		return quote, nil
	}

	perNight, err := converter.Convert(property.NightlyPrice, property.Currency, displayCurrency)
	if err != nil {
		return model.Quote{}, err
	}

	quote.Nights = Nights(draft.CheckIn, draft.CheckOut)
	quote.PricePerNight = perNight
	quote.Total = float64(quote.Nights) * perNight
	return quote, nil
}
