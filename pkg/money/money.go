// Package money formata valores monetários em real brasileiro (R$) para
// textos voltados ao cliente (SMS de cobrança, extrato em PDF).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor como "R$ 1.234,56" (locale pt-BR).
func FormatBRL(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("R$ %.2f", f)
}
