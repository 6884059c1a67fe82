package sms

import (
	"context"
	"time"
)

// SimulatedTransport simula a entrega de um SMS com um atraso fixo e sucesso
// garantido. É o transporte padrão em development, onde não há credenciais
// Twilio configuradas.
type SimulatedTransport struct {
	Delay time.Duration
}

// NewSimulatedTransport constrói o transporte simulado.
func NewSimulatedTransport(delay time.Duration) *SimulatedTransport {
	return &SimulatedTransport{Delay: delay}
}

// Send espera o atraso configurado e devolve sucesso, respeitando o contexto.
func (s *SimulatedTransport) Send(ctx context.Context, _, _ string) error {
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
