package notification

import "context"

// Transport define o porto de saída para a entrega dos alertas de dívida.
// Qualquer transporte concreto (gateway de SMS, push, e-mail) pode ser
// substituído atrás deste contrato sem mudar os chamadores; para tests se
// injeta um fake.
type Transport interface {
	// Send entrega a mensagem ao telefone informado. Deve respeitar o
	// cancelamento/prazo do contexto.
	Send(ctx context.Context, phone, body string) error
}
