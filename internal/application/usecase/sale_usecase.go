package usecase

import (
	"sort"
	"time"

	"github.com/padoca/padoca-api/internal/application/dto"
	"github.com/padoca/padoca-api/internal/domain"
	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/internal/domain/ledger"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
	"github.com/padoca/padoca-api/internal/metrics"
	"github.com/padoca/padoca-api/pkg/logger"
)

// SaleUseCase registra e consulta vendas. Toda a regra de composição (preços,
// total, dívida, estoque) vive no ledger; aqui só há adaptação de DTOs.
type SaleUseCase struct {
	store *memory.Store
	log   *logger.Logger
	met   *metrics.Metrics
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(store *memory.Store, log *logger.Logger, met *metrics.Metrics) *SaleUseCase {
	return &SaleUseCase{store: store, log: log, met: met}
}

// Create registra uma venda nova.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	method := entity.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]ledger.SaleLine, 0, len(in.Items))
	for _, item := range in.Items {
		lines = append(lines, ledger.SaleLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	sale, err := uc.store.RecordSale(ledger.SaleDraft{
		CustomerID:    in.CustomerID,
		PaymentMethod: method,
		Lines:         lines,
	}, time.Now())
	if err != nil {
		return nil, err
	}

	uc.met.SaleRecorded()
	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("payment_method", string(sale.PaymentMethod)).
		Str("total", sale.Total.StringFixed(2)).
		Bool("paid", sale.Paid).
		Msg("venda registrada")
	return toSaleResponse(sale), nil
}

// GetByID busca uma venda pelo ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, ok := uc.store.SaleByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista as vendas, mais recentes primeiro.
func (uc *SaleUseCase) List() *dto.SaleListResponse {
	sales := uc.store.Sales()
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}
}

func toSaleResponse(s entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Price:     item.Price,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		Date:          s.Date,
		CustomerID:    s.CustomerID,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		Paid:          s.Paid,
	}
}
