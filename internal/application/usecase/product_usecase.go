package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/padoca/padoca-api/internal/application/dto"
	"github.com/padoca/padoca-api/internal/domain"
	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
)

// DefaultRestockDelta incremento aplicado quando a reposição não informa
// quantidade (o botão "+10" do console).
const DefaultRestockDelta = 10

// ProductUseCase casos de uso CRUD de produtos. Estoque só muda via vendas e
// reposições.
type ProductUseCase struct {
	store *memory.Store
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(store *memory.Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// Create cria um produto novo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category := entity.ProductCategory(in.Category)
	if in.Name == "" || !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := uc.store.AddProduct(entity.Product{
		Name:     in.Name,
		Price:    in.Price,
		Category: category,
		Stock:    in.Stock,
	})
	return toProductResponse(product), nil
}

// GetByID busca um produto pelo ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, ok := uc.store.ProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update edita nome, preço e categoria. Mudar o preço não afeta vendas já
// registradas (o unitário é capturado no momento da venda).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, ok := uc.store.ProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		category := entity.ProductCategory(*in.Category)
		if !category.Valid() {
			return nil, domain.ErrInvalidInput
		}
		product.Category = category
	}
	if err := uc.store.ReplaceProduct(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos os produtos.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	products := uc.store.Products()
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// Restock repõe estoque via ledger. Delta omitido usa o incremento padrão;
// valores negativos são rejeitados.
func (uc *ProductUseCase) Restock(id string, in dto.RestockRequest) (*dto.ProductResponse, error) {
	delta := in.Delta
	if delta == 0 {
		delta = DefaultRestockDelta
	}
	product, err := uc.store.RecordRestock(id, delta)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: string(p.Category),
		Stock:    p.Stock,
		LowStock: p.LowStock(),
	}
}
