package view

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	esCL    = language.MustParse("es-CL")
	printer = message.NewPrinter(esCL)
	titler  = cases.Title(language.Spanish)
)

// FormatUF renders an indexed-unit amount with es-CL grouping, e.g.
// "UF 12.500".
func FormatUF(value float64) string {
	return printer.Sprintf("UF %v", number.Decimal(value, number.MaxFractionDigits(2)))
}

// FormatCLP renders a peso amount, e.g. "CLP $38.000.000".
func FormatCLP(value float64) string {
	return printer.Sprintf("CLP $%v", number.Decimal(value, number.MaxFractionDigits(0)))
}

// Capitalize upper-cases the first letter of each word the Spanish way.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return titler.String(s)
}

var spanishMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}
