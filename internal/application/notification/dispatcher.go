// Package notification implementa o envio de alertas de cobrança aos clientes
// com dívida pendente, desacoplado do transporte usado para entregá-los.
package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/padoca/padoca-api/internal/domain"
	"github.com/padoca/padoca-api/internal/domain/entity"
	"github.com/padoca/padoca-api/internal/infrastructure/memory"
	"github.com/padoca/padoca-api/internal/metrics"
	"github.com/padoca/padoca-api/pkg/logger"
	"github.com/padoca/padoca-api/pkg/money"
)

// Status desfecho de um envio.
type Status string

const (
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// Outcome resultado de uma tentativa de envio a um cliente.
type Outcome struct {
	ID           string // identificador da tentativa
	CustomerID   string
	CustomerName string
	Status       Status
	Reason       string // preenchido somente em falhas
}

// Config política de envio.
type Config struct {
	Cooldown      time.Duration // espera mínima entre alertas ao mesmo cliente
	Timeout       time.Duration // prazo máximo por envio
	MaxConcurrent int           // envios simultâneos no DispatchAll
}

// Dispatcher coordena os envios de alerta: no máximo um envio pendente por
// cliente, espera mínima de reenvio e prazo limitado por tentativa. O sucesso
// de um envio marca o cliente como notificado no store.
type Dispatcher struct {
	store     *memory.Store
	transport Transport
	cfg       Config
	log       *logger.Logger
	met       *metrics.Metrics

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewDispatcher constrói o dispatcher.
func NewDispatcher(store *memory.Store, transport Transport, cfg Config, log *logger.Logger, met *metrics.Metrics) *Dispatcher {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &Dispatcher{
		store:     store,
		transport: transport,
		cfg:       cfg,
		log:       log,
		met:       met,
		inFlight:  make(map[string]struct{}),
	}
}

// Dispatch envia um alerta de dívida ao cliente indicado.
//
// Rejeita (sem tentar o transporte): cliente inexistente, cliente sem dívida,
// segundo envio enquanto um está pendente, e reenvio dentro do período de
// espera. Falha do transporte ou estouro do prazo viram Outcome com
// StatusFailed; só o sucesso marca o cliente como notificado.
func (d *Dispatcher) Dispatch(ctx context.Context, customerID string) (Outcome, error) {
	customer, ok := d.store.CustomerByID(customerID)
	if !ok {
		return Outcome{}, domain.ErrNotFound
	}
	if err := d.eligible(customer, time.Now()); err != nil {
		return Outcome{}, err
	}
	if !d.acquire(customerID) {
		return Outcome{}, domain.ErrDispatchPending
	}
	defer d.release(customerID)

	return d.send(ctx, customer), nil
}

// DispatchAll envia alertas a todos os clientes com dívida ainda não
// notificados, com concorrência limitada. Cada envio tem desfecho
// independente: a falha de um não interrompe os demais.
func (d *Dispatcher) DispatchAll(ctx context.Context) ([]Outcome, error) {
	now := time.Now()
	var targets []entity.Customer
	for _, c := range d.store.Customers() {
		if c.NotificationSent {
			continue
		}
		if err := d.eligible(c, now); err != nil {
			continue
		}
		targets = append(targets, c)
	}
	if len(targets) == 0 {
		return nil, domain.ErrNothingToNotify
	}

	outcomes := make([]Outcome, len(targets))
	sem := make(chan struct{}, d.cfg.MaxConcurrent)
	var wg sync.WaitGroup

	for i, c := range targets {
		if !d.acquire(c.ID) {
			outcomes[i] = Outcome{
				ID:           uuid.New().String(),
				CustomerID:   c.ID,
				CustomerName: c.Name,
				Status:       StatusFailed,
				Reason:       domain.ErrDispatchPending.Error(),
			}
			continue
		}
		wg.Add(1)
		go func(i int, c entity.Customer) {
			defer wg.Done()
			defer d.release(c.ID)
			sem <- struct{}{}
			defer func() { <-sem }()
			outcomes[i] = d.send(ctx, c)
		}(i, c)
	}

	wg.Wait()
	return outcomes, nil
}

// Reset limpa o status de notificação de todos os clientes, liberando um novo
// ciclo de alertas.
func (d *Dispatcher) Reset() {
	d.store.ResetNotifications()
	d.log.Info().Msg("status de notificações reiniciado")
}

// eligible valida dívida e período de espera.
func (d *Dispatcher) eligible(c entity.Customer, now time.Time) error {
	if !c.HasDebt() {
		return domain.ErrNoDebt
	}
	if c.NotificationSentAt != nil && now.Sub(*c.NotificationSentAt) < d.cfg.Cooldown {
		return domain.ErrDispatchCooldown
	}
	return nil
}

func (d *Dispatcher) acquire(customerID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, pending := d.inFlight[customerID]; pending {
		return false
	}
	d.inFlight[customerID] = struct{}{}
	return true
}

func (d *Dispatcher) release(customerID string) {
	d.mu.Lock()
	delete(d.inFlight, customerID)
	d.mu.Unlock()
}

// send executa uma tentativa contra o transporte, com prazo limitado.
func (d *Dispatcher) send(ctx context.Context, c entity.Customer) Outcome {
	out := Outcome{
		ID:           uuid.New().String(),
		CustomerID:   c.ID,
		CustomerName: c.Name,
	}

	d.met.AlertStarted()
	defer d.met.AlertFinished()

	sendCtx := ctx
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	err := d.transport.Send(sendCtx, c.Phone, MessageBody(c.Name, c.DebtAmount))
	if err != nil {
		reason := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		out.Status = StatusFailed
		out.Reason = (&domain.DispatchError{Reason: reason}).Error()
		d.met.AlertDispatched(string(StatusFailed))
		d.log.Warn().Err(err).Str("customer_id", c.ID).Msg("falha ao enviar alerta de dívida")
		return out
	}

	now := time.Now()
	if err := d.store.MarkNotified(c.ID, now); err != nil {
		// Cliente sumiu entre o snapshot e a confirmação; o SMS já saiu,
		// então reportamos o envio mesmo assim.
		d.log.Error().Err(err).Str("customer_id", c.ID).Msg("não foi possível marcar cliente como notificado")
	}
	out.Status = StatusSent
	d.met.AlertDispatched(string(StatusSent))
	d.log.Info().Str("customer_id", c.ID).Str("customer", c.Name).Msg("alerta de dívida enviado")
	return out
}

// MessageBody monta o texto do SMS de cobrança.
func MessageBody(name string, debt decimal.Decimal) string {
	return fmt.Sprintf(
		"Olá %s, você tem um débito pendente de %s na Padoca. Por favor, regularize seu pagamento. Agradecemos a compreensão!",
		name, money.FormatBRL(debt),
	)
}
