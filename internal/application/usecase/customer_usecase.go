package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/padoca/padoca-api/internal/application/dto"
	"github.com/padoca/padoca-api/internal/domain"
	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
	"github.com/padoca/padoca-api/internal/metrics"
)

// CustomerUseCase casos de uso de clientes: cadastro, edição, listagem e
// registro de pagamentos de dívida.
type CustomerUseCase struct {
	store *memory.Store
	met   *metrics.Metrics
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(store *memory.Store, met *metrics.Metrics) *CustomerUseCase {
	return &CustomerUseCase{store: store, met: met}
}

// Create cadastra um cliente novo. A dívida inicial é sempre zero.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := uc.store.AddCustomer(entity.Customer{
		Name:             in.Name,
		Phone:            in.Phone,
		Email:            in.Email,
		DebtAmount:       decimal.Zero,
		LastPurchaseDate: time.Now(),
	})
	return toCustomerResponse(customer), nil
}

// GetByID busca um cliente pelo ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, ok := uc.store.CustomerByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update edita nome, telefone e e-mail. A dívida nunca é editada por aqui:
// apenas vendas fiado e pagamentos a movimentam.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, ok := uc.store.CustomerByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		if *in.Phone == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if err := uc.store.ReplaceCustomer(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes. Com onlyDebtors, devolve só quem tem dívida, ordenado
// da maior para a menor (a ordem da tela de alertas).
func (uc *CustomerUseCase) List(onlyDebtors bool) *dto.CustomerListResponse {
	customers := uc.store.Customers()
	if onlyDebtors {
		filtered := customers[:0]
		for _, c := range customers {
			if c.HasDebt() {
				filtered = append(filtered, c)
			}
		}
		customers = filtered
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].DebtAmount.GreaterThan(customers[j].DebtAmount)
		})
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}
}

// RecordPayment registra um pagamento de dívida via ledger.
func (uc *CustomerUseCase) RecordPayment(customerID string, in dto.RecordPaymentRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.store.RecordPayment(customerID, in.Amount, time.Now())
	if err != nil {
		return nil, err
	}
	uc.met.PaymentRecorded()
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Phone:              c.Phone,
		Email:              c.Email,
		DebtAmount:         c.DebtAmount,
		LastPurchaseDate:   c.LastPurchaseDate,
		LastPaymentDate:    c.LastPaymentDate,
		NotificationSent:   c.NotificationSent,
		NotificationSentAt: c.NotificationSentAt,
	}
}
