// Package display formats amounts and dates for people, following a locale.
package display

import (
	"fmt"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats values for one locale.
type Formatter struct {
	tag      language.Tag
	currency currency.Unit
	printer  *message.Printer
}

// New returns a Formatter for a BCP 47 locale like "en-US" or "de-DE".
//
// The currency is derived from the region of the locale. If the locale has
// no region that maps to a currency, US dollars are used.
func New(locale string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}

	return Formatter{
		tag:      tag,
		currency: unit,
		printer:  message.NewPrinter(tag),
	}, nil
}

// Locale returns the locale of the formatter.
func (f Formatter) Locale() string {
	return f.tag.String()
}

// Currency returns the ISO 4217 code of the currency amounts are shown in.
func (f Formatter) Currency() string {
	return f.currency.String()
}

// Symbol returns the currency symbol for the locale.
func (f Formatter) Symbol() string {
	return f.printer.Sprint(currency.Symbol(f.currency))
}

// Number formats a decimal with two fractional digits and the grouping
// of the locale.
func (f Formatter) Number(d decimal.Decimal) string {
	return f.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Amount formats a decimal as money, e.g. "$ 1,234.50".
func (f Formatter) Amount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + f.Symbol() + " " + f.Number(d.Neg())
	}

	return f.Symbol() + " " + f.Number(d)
}

// Date formats a date in ISO 8601 format.
func (f Formatter) Date(d types.Date) string {
	if d.IsZero() {
		return "-"
	}

	return d.String()
}
