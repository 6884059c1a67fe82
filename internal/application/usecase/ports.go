package usecase

import (
	"time"

	"github.com/padoca/padoca-api/internal/domain/entity"
)

// StatementGenerator porto de saída para o extrato de débito em PDF.
// A implementação concreta usa Maroto; nos testes injeta-se um fake.
type StatementGenerator interface {
	// GenerateStatement gera o PDF do extrato: dados do cliente, as vendas
	// fiado em aberto (com nomes de produto resolvidos) e o saldo devedor.
	GenerateStatement(
		customer entity.Customer,
		openSales []entity.Sale,
		productNames map[string]string,
		generatedAt time.Time,
	) ([]byte, error)
}
