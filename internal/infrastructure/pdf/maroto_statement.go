// Package pdf implementa a geração do Extrato de Débito do cliente.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Padoca  │  EXTRATO DE DÉBITO + data de emissão     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + telefone + e-mail                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Itens | Total (uma linha por venda fiado)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDO DEVEDOR                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/pkg/money"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 146, Green: 64, Blue: 14} // âmbar escuro do console
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDebt    = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa usecase.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator constrói o gerador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatement gera o PDF do extrato e devolve seus bytes.
func (g *MarotoStatementGenerator) GenerateStatement(
	customer entity.Customer,
	openSales []entity.Sale,
	productNames map[string]string,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extrato de Débito — Padoca", true).
		WithAuthor("Padoca", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(openSales) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhuma compra fiado em aberto.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range saleRows(openSales, productNames) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(balanceRow(customer))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar extrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da padaria (esq) e título + data de emissão (dir).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Padoca", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Padaria e Confeitaria", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("EXTRATO DE DÉBITO", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em: "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: dados do cliente.
func customerRow(customer entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s",
				customer.Phone,
				nonEmpty(customer.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de compras fiado em aberto.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Itens", 7, align.Left),
		h("Total", 3, align.Right),
	)
}

// saleRows: uma linha por venda fiado em aberto.
func saleRows(openSales []entity.Sale, productNames map[string]string) []core.Row {
	result := make([]core.Row, 0, len(openSales))
	for _, s := range openSales {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				s.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(7).Add(text.New(
				itemsSummary(s.Items, productNames),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatBRL(s.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// balanceRow: saldo devedor em destaque.
func balanceRow(customer entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("SALDO DEVEDOR:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorDebt, Top: 3, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(money.FormatBRL(customer.DebtAmount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorDebt, Top: 3, Right: 1,
			}),
		),
	)
}

// itemsSummary monta "10× Pão Francês, 2× Café Pequeno".
func itemsSummary(items []entity.SaleItem, productNames map[string]string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := productNames[item.ProductID]
		if name == "" {
			name = "produto " + item.ProductID
		}
		parts = append(parts, fmt.Sprintf("%d× %s", item.Quantity, name))
	}
	return strings.Join(parts, ", ")
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
